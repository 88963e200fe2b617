package strokedpath

// fillMiterJoin emits the five-vertex miter fan for a join, per the
// component design. Vertices 2 and 3 are identical: both carry the
// offset encoding (n0, n1) and kind miter_join, matching the source's
// duplicated-vertex convention; vertex 2 closes triangle {0,1,2} and
// vertex 3 opens triangle {0,3,4}.
func fillMiterJoin(cjd CommonJoinData) ([]Vertex, []uint32) {
	l := cjd.Lambda
	verts := []Vertex{
		{Position: cjd.P, PreOffset: Point{}, OnBoundary: 0, Tag: uint32(KindEdge)},
		{Position: cjd.P, PreOffset: cjd.N0.Mul(l), OnBoundary: 1, Tag: uint32(KindEdge)},
		{Position: cjd.P, PreOffset: cjd.N0, AuxiliaryOffset: cjd.N1, OnBoundary: 1, Tag: uint32(KindMiterJoin)},
		{Position: cjd.P, PreOffset: cjd.N0, AuxiliaryOffset: cjd.N1, OnBoundary: 1, Tag: uint32(KindMiterJoin)},
		{Position: cjd.P, PreOffset: cjd.N1.Mul(l), OnBoundary: 1, Tag: uint32(KindEdge)},
	}
	idx := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}
	return verts, idx
}

// fillCapJoin builds the cap-join point set: the same miter-shaped
// geometry as MiterJoinBuilder at the same interior/closing join
// corners, but tagged kind=cap_join so a dash-aware renderer can
// substitute it for a cap when the corner falls in a dash gap. There is
// no independent cap-join geometry formula in the source; it is the
// miter fill with its edge-kind vertices left alone and its
// miter_join-kind vertices retagged.
func fillCapJoin(cjd CommonJoinData) ([]Vertex, []uint32) {
	verts, idx := fillMiterJoin(cjd)
	for i := range verts {
		if verts[i].Kind() == KindMiterJoin {
			verts[i].Tag = uint32(KindCapJoin)
		}
	}
	return verts, idx
}
