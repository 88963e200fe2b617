package strokedpath

import "math"

// Point represents a 2D point or vector (internal copy to avoid import
// cycle with the root gg package).
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

func (p Point) Length() float64 { return math.Sqrt(p.LengthSquared()) }

func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns J(p) = (-y, x), a 90-degree counter-clockwise rotation.
// This is the operator the spec calls J when deriving edge normals from
// tangents (n = J(v)/|v|) and when reconstructing miter offsets.
func (p Point) Perp() Point { return Point{X: -p.Y, Y: p.X} }

// PerpInv returns J^-1(p) = (y, -x), the inverse rotation used by
// CommonJoinData to recover a tangent from a normal.
func (p Point) PerpInv() Point { return Point{X: p.Y, Y: -p.X} }

func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }
