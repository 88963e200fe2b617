package strokedpath

import (
	"io"
	"log/slog"
	"testing"
)

func TestNewRejectsNilInput(t *testing.T) {
	if _, err := New(nil); err != ErrNilInput {
		t.Errorf("New(nil) error = %v, want ErrNilInput", err)
	}
}

// Scenario: a single straight open edge has no joins and two caps, per
// every cap point set.
func TestNewStraightOpenEdgeHasNoJoinsTwoCaps(t *testing.T) {
	fp := newOpenContour(Pt(0, 0), Pt(10, 0))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sp.NumberContours() != 1 {
		t.Fatalf("NumberContours() = %d, want 1", sp.NumberContours())
	}
	if got := sp.NumberJoins(0); got != 0 {
		t.Errorf("NumberJoins(0) = %d, want 0", got)
	}
	for _, set := range []PointSet{PointSetBevelJoins, PointSetMiterJoins, PointSetRoundedJoins, PointSetCapJoins} {
		if n := len(sp.Points(set, true)); n != 0 {
			t.Errorf("Points(%v, true) has %d vertices, want 0", set, n)
		}
	}
	if n := len(sp.Points(PointSetSquareCaps, true)); n == 0 {
		t.Errorf("Points(PointSetSquareCaps, true) is empty, want two caps' worth of geometry")
	}
	if n := len(sp.Points(PointSetEdges, true)); n == 0 {
		t.Errorf("Points(PointSetEdges, true) is empty, want edge geometry")
	}
}

// Scenario: an open right-angle corner has exactly one interior join.
func TestNewOpenCornerOneJoin(t *testing.T) {
	fp := newCornerContour(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := sp.NumberJoins(0); got != 1 {
		t.Errorf("NumberJoins(0) = %d, want 1", got)
	}
	begin, end := sp.JoinPointsRange(PointSetBevelJoins, 0, 0)
	if end <= begin {
		t.Errorf("JoinPointsRange for the only join is empty: [%d,%d)", begin, end)
	}
}

// Scenario: a closed unit square has four joins (two interior, two
// closing) and no caps in any cap point set.
func TestNewClosedSquareFourJoinsNoCaps(t *testing.T) {
	fp := newClosedPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := sp.NumberJoins(0); got != 4 {
		t.Errorf("NumberJoins(0) = %d, want 4", got)
	}
	for _, set := range []PointSet{PointSetSquareCaps, PointSetRoundedCaps, PointSetFlatCaps} {
		if n := len(sp.Points(set, true)); n != 0 {
			t.Errorf("Points(%v, true) has %d vertices, want 0 for a closed contour", set, n)
		}
	}
}

// Invariant: within any single view, the set of depths present across
// every vertex is exactly [0, NumberDepth(view)) -- a bijection, not
// merely a bound.
func TestDepthIsABijectionOverEachView(t *testing.T) {
	fp := newClosedPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, set := range []PointSet{PointSetEdges, PointSetBevelJoins} {
		for _, withClosing := range []bool{true, false} {
			verts := sp.Points(set, withClosing)
			n := sp.NumberDepth(set, withClosing)
			seen := make(map[uint32]bool)
			for _, v := range verts {
				if v.Depth >= n {
					t.Errorf("set %v withClosing=%v: vertex depth %d out of range [0,%d)", set, withClosing, v.Depth, n)
				}
				seen[v.Depth] = true
			}
			if uint32(len(seen)) != n && len(verts) > 0 {
				t.Errorf("set %v withClosing=%v: %d distinct depths present, want %d", set, withClosing, len(seen), n)
			}
		}
	}
}

// Invariant: every index in a view references a vertex within that
// same view's vertex slice.
func TestIndicesStayWithinTheirView(t *testing.T) {
	fp := newClosedPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < numPointSets; i++ {
		set := PointSet(i)
		for _, withClosing := range []bool{true, false} {
			verts := sp.Points(set, withClosing)
			idx := sp.Indices(set, withClosing)
			for _, ix := range idx {
				if int(ix) >= len(verts) {
					t.Errorf("set %v withClosing=%v: index %d out of range for %d vertices", set, withClosing, ix, len(verts))
				}
			}
		}
	}
}

// Invariant: OnBoundary is always one of -1, 0, +1.
func TestOnBoundaryIsAlwaysLegal(t *testing.T) {
	fp := newClosedPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < numPointSets; i++ {
		set := PointSet(i)
		for _, v := range sp.Points(set, true) {
			if v.OnBoundary != -1 && v.OnBoundary != 0 && v.OnBoundary != 1 {
				t.Errorf("set %v: OnBoundary = %d, want one of -1,0,1", set, v.OnBoundary)
			}
		}
	}
}

// Invariant: PainterData's cached aggregate matches the same data the
// direct accessors report.
func TestPainterDataMatchesDirectAccessors(t *testing.T) {
	fp := newCornerContour(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	sp, err := New(fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data := sp.PainterData()
	for i := 0; i < numPointSets; i++ {
		set := PointSet(i)
		s := data.Sets[set]
		if len(s.VerticesWithClosing) != len(sp.Points(set, true)) {
			t.Errorf("set %v: cached with-closing vertex count mismatch", set)
		}
		if len(s.VerticesWithoutClosing) != len(sp.Points(set, false)) {
			t.Errorf("set %v: cached without-closing vertex count mismatch", set)
		}
	}
	// Calling it again must return the same cached pointer (sync.Once).
	if data2 := sp.PainterData(); data2 != data {
		t.Errorf("PainterData() returned a different pointer on second call")
	}
}

func TestWithCurveTessellationShrinksRoundedSampleCount(t *testing.T) {
	fp := newCornerContour(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	coarse, err := New(fp, WithCurveTessellation(3.0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fine, err := New(fp, WithCurveTessellation(0.01))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	coarseN := len(coarse.Points(PointSetRoundedJoins, true))
	fineN := len(fine.Points(PointSetRoundedJoins, true))
	if fineN <= coarseN {
		t.Errorf("fine tessellation produced %d rounded-join vertices, want more than coarse's %d", fineN, coarseN)
	}
}

func TestWithLoggerIsUsedAndNeverPanics(t *testing.T) {
	fp := newOpenContour(Pt(0, 0), Pt(10, 0))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := New(fp, WithLogger(logger)); err != nil {
		t.Fatalf("New with custom logger: %v", err)
	}
}
