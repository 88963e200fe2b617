package strokedpath

// fillBevelJoin emits the one-triangle bevel geometry for a join.
func fillBevelJoin(cjd CommonJoinData) ([]Vertex, []uint32) {
	l := cjd.Lambda
	verts := []Vertex{
		{Position: cjd.P, PreOffset: cjd.N0.Mul(l), OnBoundary: 1, Tag: uint32(KindEdge)},
		{Position: cjd.P, PreOffset: Point{}, OnBoundary: 0, Tag: uint32(KindEdge)},
		{Position: cjd.P, PreOffset: cjd.N1.Mul(l), OnBoundary: 1, Tag: uint32(KindEdge)},
	}
	idx := []uint32{0, 1, 2}
	return verts, idx
}
