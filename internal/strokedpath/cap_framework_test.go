package strokedpath

import "testing"

func TestBuildCapSetOpenContourTwoCaps(t *testing.T) {
	fp := newOpenContour(Pt(0, 0), Pt(10, 0))
	eb := EdgeBuilder{}
	_, _, normals, _, _ := eb.Build(fp)

	fill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillSquareOrFlatCap(ccd, KindSquareCap) }
	pts, idx, _, _ := buildCapSet(fp, normals, false, fill)

	// Two caps, 5 vertices/9 indices each.
	if got := pts.Len(true); got != 10 {
		t.Errorf("vertex count = %d, want 10 (two caps)", got)
	}
	if got := idx.Len(true); got != 18 {
		t.Errorf("index count = %d, want 18", got)
	}
}

func TestBuildCapSetClosedContourNoCaps(t *testing.T) {
	fp := newClosedPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	eb := EdgeBuilder{}
	_, _, normals, _, _ := eb.Build(fp)

	fill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillSquareOrFlatCap(ccd, KindSquareCap) }
	pts, idx, _, _ := buildCapSet(fp, normals, false, fill)
	if pts.Len(true) != 0 || idx.Len(true) != 0 {
		t.Errorf("closed contour produced cap geometry: %d vertices / %d indices, want 0/0", pts.Len(true), idx.Len(true))
	}
}

// Flat caps skip degenerate contours; square/rounded caps do not.
func TestBuildCapSetDegenerateContourSkipsOnlyFlatCaps(t *testing.T) {
	fp := &fakePath{}
	fp.addDegeneratePoint(Pt(5, 5))
	eb := EdgeBuilder{}
	_, _, normals, _, _ := eb.Build(fp)

	squareFill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillSquareOrFlatCap(ccd, KindSquareCap) }
	flatFill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillSquareOrFlatCap(ccd, KindFlatCap) }

	squarePts, _, _, _ := buildCapSet(fp, normals, false, squareFill)
	flatPts, _, _, _ := buildCapSet(fp, normals, true, flatFill)

	if squarePts.Len(true) == 0 {
		t.Errorf("square caps were skipped for a degenerate contour, want geometry")
	}
	if flatPts.Len(true) != 0 {
		t.Errorf("flat caps were emitted for a degenerate contour, want none")
	}
}

func TestResolveCapNormalFallsBackForSentinel(t *testing.T) {
	if got := resolveCapNormal(sentinelCapNormal); got != (Point{1, 0}) {
		t.Errorf("resolveCapNormal(sentinelCapNormal) = %v, want (1,0)", got)
	}
	if got := resolveCapNormal(sentinelNormal); got != (Point{1, 0}) {
		t.Errorf("resolveCapNormal(sentinelNormal) = %v, want (1,0)", got)
	}
	real := Pt(0, 1)
	if got := resolveCapNormal(real); got != real {
		t.Errorf("resolveCapNormal(real normal) = %v, want unchanged %v", got, real)
	}
}
