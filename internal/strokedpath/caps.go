package strokedpath

import "math"

// fillSquareOrFlatCap emits the five-vertex, three-triangle cap fan
// shared by square and flat caps; they differ only in the tag kind the
// renderer uses to pick an extrusion width.
func fillSquareOrFlatCap(ccd CommonCapData, kind PointKind) ([]Vertex, []uint32) {
	verts := []Vertex{
		{Position: ccd.P, PreOffset: Point{}, OnBoundary: 0, Tag: uint32(KindEdge)},
		{Position: ccd.P, PreOffset: ccd.N, AuxiliaryOffset: ccd.N, OnBoundary: 1, Tag: uint32(KindEdge)},
		{Position: ccd.P, PreOffset: ccd.N, AuxiliaryOffset: ccd.V, OnBoundary: 1, Tag: uint32(kind)},
		{Position: ccd.P, PreOffset: ccd.N.Mul(-1), AuxiliaryOffset: ccd.V, OnBoundary: 1, Tag: uint32(kind)},
		{Position: ccd.P, PreOffset: ccd.N.Mul(-1), AuxiliaryOffset: ccd.N.Mul(-1), OnBoundary: 1, Tag: uint32(KindEdge)},
	}
	idx := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}
	return verts, idx
}

// fillRoundedCap emits the adaptively-tessellated half-fan for a
// rounded cap. Rounded caps are emitted for degenerate contours too
// (they degenerate to a full disc).
func fillRoundedCap(ccd CommonCapData, tau float64) ([]Vertex, []uint32) {
	n := arcSampleCount(math.Pi, tau)
	delta := math.Pi / float64(n-1)

	verts := make([]Vertex, 0, n+1)
	verts = append(verts, Vertex{Position: ccd.P, PreOffset: Point{}, OnBoundary: 0, Tag: uint32(KindEdge)})
	verts = append(verts, Vertex{Position: ccd.P, PreOffset: ccd.N, OnBoundary: 1, Tag: uint32(KindEdge)})

	for i := 1; i <= n-2; i++ {
		theta := float64(i) * delta
		verts = append(verts, Vertex{
			Position:        ccd.P,
			PreOffset:       ccd.N,
			AuxiliaryOffset: Point{X: math.Sin(theta), Y: math.Cos(theta)},
			OnBoundary:      1,
			Tag:             uint32(KindRoundedCap),
		})
	}
	verts = append(verts, Vertex{Position: ccd.P, PreOffset: ccd.N.Mul(-1), OnBoundary: 1, Tag: uint32(KindEdge)})

	idx := make([]uint32, 0, 3*(n-1))
	for i := 1; i <= n-1; i++ {
		idx = append(idx, 0, uint32(i), uint32(i+1))
	}
	return verts, idx
}
