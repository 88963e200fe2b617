package gg

import (
	ipath "github.com/gogpu/gg/internal/path"
	"github.com/gogpu/gg/internal/strokedpath"
)

// StrokedPath is the immutable set of GPU-ready meshes produced by
// tessellating a Path for stroking: everything needed to stroke it at
// any future width, miter limit, and dash pattern without recomputing
// geometry. Build one with Path.Stroked.
type StrokedPath = strokedpath.StrokedPath

// StrokedPathOption configures StrokedPath construction.
type StrokedPathOption = strokedpath.Option

// WithCurveTessellation overrides the angular step used to size
// rounded-join and rounded-cap arc fans.
func WithCurveTessellation(step float64) StrokedPathOption {
	return strokedpath.WithCurveTessellation(step)
}

// PointSet selects which generated mesh to read from a StrokedPath.
type PointSet = strokedpath.PointSet

const (
	PointSetEdges        = strokedpath.PointSetEdges
	PointSetBevelJoins   = strokedpath.PointSetBevelJoins
	PointSetRoundedJoins = strokedpath.PointSetRoundedJoins
	PointSetMiterJoins   = strokedpath.PointSetMiterJoins
	PointSetCapJoins     = strokedpath.PointSetCapJoins
	PointSetSquareCaps   = strokedpath.PointSetSquareCaps
	PointSetRoundedCaps  = strokedpath.PointSetRoundedCaps
	PointSetFlatCaps     = strokedpath.PointSetFlatCaps
)

// PointKind identifies the shader formula a stroked-path vertex needs.
type PointKind = strokedpath.PointKind

// Stroked tessellates the path into a StrokedPath: the offset-encoded
// vertex and index buffers needed to stroke it at any width, miter
// limit, or dash pattern. tolerance controls how finely curves are
// flattened into polylines before stroking.
func (p *Path) Stroked(tolerance float64, opts ...StrokedPathOption) (*StrokedPath, error) {
	// curveTessellation is left at 0 (unset): this adapter flattens
	// curves to a polyline tolerance, not an angular step, so it has no
	// step of its own to report. Leaving it unset lets New's own
	// default, or a caller's WithCurveTessellation, take effect instead
	// of silently overriding it.
	tp := ipath.Tessellate(toInternalElements(p.elements), tolerance, 0)
	return strokedpath.New(tp, opts...)
}

// toInternalElements converts the root package's path elements into
// internal/path's local element types, which carry their own Point
// type to avoid an import cycle.
func toInternalElements(elements []PathElement) []ipath.PathElement {
	out := make([]ipath.PathElement, len(elements))
	for i, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			out[i] = ipath.MoveTo{Point: toInternalPoint(e.Point)}
		case LineTo:
			out[i] = ipath.LineTo{Point: toInternalPoint(e.Point)}
		case QuadTo:
			out[i] = ipath.QuadTo{Control: toInternalPoint(e.Control), Point: toInternalPoint(e.Point)}
		case CubicTo:
			out[i] = ipath.CubicTo{
				Control1: toInternalPoint(e.Control1),
				Control2: toInternalPoint(e.Control2),
				Point:    toInternalPoint(e.Point),
			}
		case Close:
			out[i] = ipath.Close{}
		}
	}
	return out
}

func toInternalPoint(p Point) ipath.Point { return ipath.Point{X: p.X, Y: p.Y} }
