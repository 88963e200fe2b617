package strokedpath

import (
	"math"
	"math/cmplx"
)

// arcSampleCount returns N = max(3, ceil(|delta|/tau)), the number of
// arc samples used by both rounded joins and rounded caps.
func arcSampleCount(delta, tau float64) int {
	if tau <= 0 {
		tau = 0.1
	}
	n := int(math.Ceil(math.Abs(delta) / tau))
	if n < 3 {
		n = 3
	}
	return n
}

// fillRoundedJoin emits the adaptively-tessellated arc fan for a
// rounded join. tau is the curve_tessellation angular step.
func fillRoundedJoin(cjd CommonJoinData, tau float64) ([]Vertex, []uint32) {
	l := cjd.Lambda
	z0c := complex(cjd.N0.X*l, cjd.N0.Y*l)
	z1c := complex(cjd.N1.X*l, cjd.N1.Y*l)

	delta := cmplx.Phase(z1c * cmplx.Conj(z0c))
	n := arcSampleCount(delta, tau)
	deltaStep := delta / float64(n-1)

	verts := make([]Vertex, 0, n+1)
	verts = append(verts, Vertex{Position: cjd.P, PreOffset: Point{}, OnBoundary: 0, Tag: uint32(KindEdge)})
	verts = append(verts, Vertex{Position: cjd.P, PreOffset: cjd.N0.Mul(l), OnBoundary: 1, Tag: uint32(KindEdge)})

	preOffset := Point{X: cjd.N0.X * l, Y: cjd.N1.X * l}
	for i := 1; i <= n-2; i++ {
		theta := float64(i) * deltaStep
		rot := complex(math.Cos(theta), math.Sin(theta)) * z0c
		c := real(rot)
		sinNeg := imag(rot) < 0
		verts = append(verts, Vertex{
			Position:        cjd.P,
			PreOffset:       preOffset,
			AuxiliaryOffset: Point{X: float64(i) / float64(n-1), Y: c},
			OnBoundary:      1,
			Tag:             makeTag(KindRoundedJoin, cjd.N0.Y*l < 0, cjd.N1.Y*l < 0, sinNeg),
		})
	}
	verts = append(verts, Vertex{Position: cjd.P, PreOffset: cjd.N1.Mul(l), OnBoundary: 1, Tag: uint32(KindEdge)})

	idx := make([]uint32, 0, 3*(n-1))
	for i := 1; i <= n-1; i++ {
		idx = append(idx, 0, uint32(i), uint32(i+1))
	}
	return verts, idx
}
