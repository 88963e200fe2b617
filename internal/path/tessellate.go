package path

import "github.com/gogpu/gg/internal/strokedpath"

// edgeRange is a [begin, end) range into tessellatedPath.points.
type edgeRange [2]int

// contourMeta is one contour's bookkeeping: its edge ranges plus the
// flags strokedpath.TessellatedPath needs.
type contourMeta struct {
	edges       []edgeRange
	closed      bool
	degenerate  bool
	unclosedEnd int // index into points, exclusive, excluding the closing edge
}

// tessellatedPath is the concrete TessellatedPath this package produces
// from a gg.Path-shaped element list. It is the in-pack stand-in for
// the curve tessellator spec.md treats as an out-of-scope external
// collaborator: strokedpath depends only on the interface, never on
// this type.
type tessellatedPath struct {
	points   []strokedpath.TessellationPoint
	contours []contourMeta
	params   strokedpath.TessellationParameters
}

func (t *tessellatedPath) NumberContours() int { return len(t.contours) }

func (t *tessellatedPath) NumberEdges(contour int) int { return len(t.contours[contour].edges) }

func (t *tessellatedPath) EdgeRange(contour, edge int) (int, int) {
	r := t.contours[contour].edges[edge]
	return r[0], r[1]
}

func (t *tessellatedPath) PointData() []strokedpath.TessellationPoint { return t.points }

func (t *tessellatedPath) UnclosedContourPointData(contour int) []strokedpath.TessellationPoint {
	cm := t.contours[contour]
	if len(cm.edges) == 0 {
		return nil
	}
	begin := cm.edges[0][0]
	return t.points[begin:cm.unclosedEnd]
}

func (t *tessellatedPath) ContourIsDegenerate(contour int) bool { return t.contours[contour].degenerate }

func (t *tessellatedPath) ContourIsClosed(contour int) bool { return t.contours[contour].closed }

func (t *tessellatedPath) TessellationParameters() strokedpath.TessellationParameters {
	return t.params
}

// Tessellate walks a path's elements and produces the contour/edge
// polyline structure with arc-length metadata that strokedpath.New
// requires, flattening curves the same way Flatten/EdgeIter do
// elsewhere in this package. tolerance controls curve flattening;
// curveTessellation is passed through as the resulting
// TessellationParameters' angular step for rounded joins/caps.
func Tessellate(elements []PathElement, tolerance, curveTessellation float64) strokedpath.TessellatedPath {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	tp := &tessellatedPath{params: strokedpath.TessellationParameters{CurveTessellation: curveTessellation}}

	b := &contourAccumulator{tp: tp, tolerance: tolerance}
	// reopened marks the contour Close starts implicitly; if nothing is
	// drawn on it, it is dropped instead of becoming a degenerate contour.
	reopened := false
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			if reopened && len(b.meta.edges) == 0 {
				b.active = false
			}
			reopened = false
			b.flush(false)
			b.start(e.Point)
		case LineTo:
			b.lineTo(e.Point)
		case QuadTo:
			b.curveTo(flattenQuadratic(b.current, e.Control, e.Point, tolerance))
		case CubicTo:
			b.curveTo(flattenCubic(b.current, e.Control1, e.Control2, e.Point, tolerance))
		case Close:
			b.flush(true)
			b.start(b.start0) // a fresh, still-open contour begins at the same point until the next MoveTo
			reopened = true
		}
	}
	if reopened && len(b.meta.edges) == 0 {
		b.active = false
	}
	b.flush(false)

	return tp
}

// contourAccumulator builds one contour's flat point array and edge
// ranges at a time, appending finished contours into tp.contours.
type contourAccumulator struct {
	tp        *tessellatedPath
	tolerance float64

	active     bool
	start0     Point
	current    Point
	meta       contourMeta
	arc        float64
	realEdges  int
}

func (b *contourAccumulator) start(p Point) {
	b.active = true
	b.start0 = p
	b.current = p
	b.arc = 0
	b.realEdges = 0
	b.meta = contourMeta{}
}

// appendEdge appends one edge's polyline (at least two points,
// beginning at b.current) to the flat array and records its range.
func (b *contourAccumulator) appendEdge(pts []Point) {
	if len(pts) == 0 {
		return
	}
	begin := len(b.tp.points)
	all := append([]Point{b.current}, pts...)
	tangents := computeTangents(all)
	edgeStartArc := b.arc
	for i, p := range all {
		if i > 0 {
			b.arc += p.Distance(all[i-1])
		}
		b.tp.points = append(b.tp.points, strokedpath.TessellationPoint{
			Position:                 strokedpath.Pt(p.X, p.Y),
			Tangent:                  strokedpath.Pt(tangents[i].X, tangents[i].Y),
			DistanceFromEdgeStart:    b.arc - edgeStartArc,
			DistanceFromContourStart: b.arc,
		})
	}
	b.meta.edges = append(b.meta.edges, edgeRange{begin, len(b.tp.points)})
	b.current = all[len(all)-1]
}

func (b *contourAccumulator) lineTo(p Point) {
	if !b.active {
		b.start(p)
		return
	}
	b.appendEdge([]Point{p})
	b.realEdges++
}

func (b *contourAccumulator) curveTo(flattened []Point) {
	if !b.active {
		return
	}
	b.appendEdge(flattened)
	b.realEdges++
}

// flush closes out the active contour, if any. closing is true when a
// Close element ended it; it adds the synthetic closing edge.
func (b *contourAccumulator) flush(closing bool) {
	if !b.active {
		return
	}
	if len(b.meta.edges) == 0 && !closing {
		// A MoveTo with nothing drawn before the next MoveTo/end of
		// path: a degenerate single-point contour. Record one point so
		// UnclosedContourPointData still has a front/back for rounded
		// caps to use.
		begin := len(b.tp.points)
		b.tp.points = append(b.tp.points, strokedpath.TessellationPoint{Position: strokedpath.Pt(b.start0.X, b.start0.Y)})
		b.meta.edges = append(b.meta.edges, edgeRange{begin, begin + 1})
	}
	b.meta.unclosedEnd = len(b.tp.points)
	if closing {
		b.appendEdge([]Point{b.start0})
		b.meta.closed = true
	}
	b.meta.degenerate = b.realEdges == 0
	b.tp.contours = append(b.tp.contours, b.meta)
	b.active = false
}

// computeTangents derives a per-point tangent via central differences,
// falling back to the one available neighbor at either end of an edge.
func computeTangents(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i := range pts {
		switch {
		case len(pts) == 1:
			out[i] = Point{}
		case i == 0:
			out[i] = pts[1].Sub(pts[0])
		case i == len(pts)-1:
			out[i] = pts[i].Sub(pts[i-1])
		default:
			out[i] = pts[i+1].Sub(pts[i-1])
		}
	}
	return out
}
