package strokedpath

import "math"

// PointKind identifies what formula a shader must use to reconstruct a
// vertex's offset. These are stable integer values: part of the wire
// contract with the shader, never reorder them.
type PointKind int

const (
	KindEdge PointKind = iota
	KindRoundedJoin
	KindMiterJoin
	KindRoundedCap
	KindSquareCap
	KindFlatCap
	KindCapJoin
)

func (k PointKind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindRoundedJoin:
		return "rounded_join"
	case KindMiterJoin:
		return "miter_join"
	case KindRoundedCap:
		return "rounded_cap"
	case KindSquareCap:
		return "square_cap"
	case KindFlatCap:
		return "flat_cap"
	case KindCapJoin:
		return "cap_join"
	default:
		return "unknown"
	}
}

// PointSet selects which generated mesh to publish. Bevel joins are not
// a PointKind (their vertices carry KindEdge) but they are still a
// distinct PointSet: the mesh that contains only bevel triangles.
type PointSet int

const (
	PointSetEdges PointSet = iota
	PointSetBevelJoins
	PointSetRoundedJoins
	PointSetMiterJoins
	PointSetCapJoins
	PointSetSquareCaps
	PointSetRoundedCaps
	PointSetFlatCaps
)

const numPointSets = int(PointSetFlatCaps) + 1

// Tag bit layout: bits 0-3 hold the point kind, bit 4 the sign of n0.y,
// bit 5 the sign of n1.y, bit 6 the sign of the sine value used by
// rounded-join fans. Bit-exact with the shader's wire contract.
const (
	tagKindMask    = 0xF
	tagN0SignBit   = 1 << 4
	tagN1SignBit   = 1 << 5
	tagSinSignBit  = 1 << 6
)

func makeTag(kind PointKind, n0YNeg, n1YNeg, sinNeg bool) uint32 {
	tag := uint32(kind) & tagKindMask
	if n0YNeg {
		tag |= tagN0SignBit
	}
	if n1YNeg {
		tag |= tagN1SignBit
	}
	if sinNeg {
		tag |= tagSinSignBit
	}
	return tag
}

// Vertex is a width-independent, offset-encoded stroked-path vertex.
type Vertex struct {
	Position                 Point
	PreOffset                Point
	AuxiliaryOffset          Point
	DistanceFromEdgeStart    float64
	DistanceFromContourStart float64
	OnBoundary               int8 // one of -1, 0, +1
	Depth                    uint32
	Tag                      uint32
}

// Kind extracts the point kind from the tag.
func (v Vertex) Kind() PointKind { return PointKind(v.Tag & tagKindMask) }

func (v Vertex) n0YNegative() bool { return v.Tag&tagN0SignBit != 0 }
func (v Vertex) n1YNegative() bool { return v.Tag&tagN1SignBit != 0 }
func (v Vertex) sinNegative() bool { return v.Tag&tagSinSignBit != 0 }

// OffsetVector computes the pure-math, width-independent offset a
// shader would compute for this vertex, per the per-kind formulas of
// the component design. It does not apply a miter-limit clamp; use
// MiterDistance and clamp the caller's own r if a limit is required.
func (v Vertex) OffsetVector() Point {
	switch v.Kind() {
	case KindEdge:
		return v.PreOffset

	case KindMiterJoin, KindCapJoin:
		return v.miterOffset(nil)

	case KindRoundedJoin:
		c := v.AuxiliaryOffset.Y
		y := math.Sqrt(math.Max(0, 1-c*c))
		if v.sinNegative() {
			y = -y
		}
		return Point{X: c, Y: y}

	case KindSquareCap, KindFlatCap:
		return v.PreOffset.Add(v.AuxiliaryOffset.Mul(0.5))

	case KindRoundedCap:
		n := v.PreOffset
		s, c := v.AuxiliaryOffset.X, v.AuxiliaryOffset.Y
		return n.Perp().Mul(s).Add(n.Mul(c))

	default:
		return v.PreOffset
	}
}

// miterOffset implements the shader-side miter reconstruction formula
// of the component design. If limit is non-nil, r is clamped to
// [-*limit, *limit] before it is used, matching the miter-limit
// behaviour a renderer applies at draw time.
func (v Vertex) miterOffset(limit *float64) Point {
	pre, aux := v.PreOffset, v.AuxiliaryOffset
	denom := pre.Perp().Dot(aux)
	if denom == 0 {
		return pre
	}
	r := (pre.Dot(aux) - 1) / denom
	if limit != nil {
		m := *limit
		if r > m {
			r = m
		}
		if r < -m {
			r = -m
		}
	}
	mu := -1.0
	if denom < 0 {
		mu = 1.0
	}
	return pre.Sub(pre.Perp().Mul(r)).Mul(mu)
}

// MiterDistance is the pure-math API fastuidraw exposes on miter_join
// vertices: the unclamped r value used by miterOffset, or 0 if the
// denominator vanishes.
func (v Vertex) MiterDistance() float64 {
	pre, aux := v.PreOffset, v.AuxiliaryOffset
	denom := pre.Perp().Dot(aux)
	if denom == 0 {
		return 0
	}
	return (aux.Perp().Dot(pre.Perp()) - 1) / denom
}
