package strokedpath

// CommonJoinData derives the shared geometry of any join (bevel, miter,
// or rounded) from the two normals meeting at the join's point.
type CommonJoinData struct {
	P      Point
	N0, N1 Point
	V0, V1 Point
	Lambda float64
}

// newCommonJoinData computes v0, v1 and lambda per the component
// design: v0 = J^-1(n0), v1 = J^-1(n1) are the tangents that produced
// n0/n1, and lambda selects the outer/acute side of the corner.
func newCommonJoinData(p, n0, n1 Point) CommonJoinData {
	v0 := n0.PerpInv()
	v1 := n1.PerpInv()
	return CommonJoinData{
		P: p, N0: n0, N1: n1,
		V0: v0, V1: v1,
		Lambda: computeLambda(n0, n1),
	}
}

// computeLambda is the shared lambda formula used both by
// CommonJoinData (on the two normals n0, n1 of an interior or closing
// join) and by EdgeBuilder's bevel-connector side selection (on the two
// tangents of consecutive sub-edges within one edge). det = dot(v1, a)
// where v1 = J^-1(b); lambda = -1 if det > 0 else +1.
func computeLambda(a, b Point) float64 {
	v1 := b.PerpInv()
	det := v1.Dot(a)
	if det > 0 {
		return -1
	}
	return 1
}
