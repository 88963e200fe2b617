package strokedpath

// fakeContour and fakePath let tests build a TessellatedPath by hand,
// matching the scenarios spec.md's Testable Properties section
// describes as literal contours of points.
type fakeContour struct {
	edges       [][2]int
	closed      bool
	degenerate  bool
	unclosedEnd int
}

type fakePath struct {
	points   []TessellationPoint
	contours []fakeContour
	params   TessellationParameters
}

func (f *fakePath) NumberContours() int { return len(f.contours) }
func (f *fakePath) NumberEdges(c int) int { return len(f.contours[c].edges) }
func (f *fakePath) EdgeRange(c, e int) (int, int) {
	r := f.contours[c].edges[e]
	return r[0], r[1]
}
func (f *fakePath) PointData() []TessellationPoint { return f.points }
func (f *fakePath) UnclosedContourPointData(c int) []TessellationPoint {
	cm := f.contours[c]
	if len(cm.edges) == 0 {
		return nil
	}
	return f.points[cm.edges[0][0]:cm.unclosedEnd]
}
func (f *fakePath) ContourIsDegenerate(c int) bool { return f.contours[c].degenerate }
func (f *fakePath) ContourIsClosed(c int) bool     { return f.contours[c].closed }
func (f *fakePath) TessellationParameters() TessellationParameters { return f.params }

// fakeBuilder accumulates edges for one contour at a time, auto-filling
// arc-length and a secant tangent the same way the real adapter does.
type fakeBuilder struct {
	fp  *fakePath
	arc float64
}

func newFakeBuilder() *fakeBuilder {
	// Leave CurveTessellation at zero so strokedpath.New falls back to
	// its own default (or a caller-supplied Option), matching how a real
	// tessellator reports "no preference".
	return &fakeBuilder{fp: &fakePath{}}
}

// addEdge appends one edge spanning the given literal points (at least
// two) to the current contour under construction.
func (b *fakeBuilder) addEdge(contour *fakeContour, pts ...Point) {
	begin := len(b.fp.points)
	edgeStart := b.arc
	for i, p := range pts {
		var tangent Point
		switch {
		case len(pts) == 1:
			tangent = Point{}
		case i == 0:
			tangent = pts[1].Sub(pts[0])
		case i == len(pts)-1:
			tangent = pts[i].Sub(pts[i-1])
		default:
			tangent = pts[i+1].Sub(pts[i-1])
		}
		if i > 0 {
			b.arc += p.Sub(pts[i-1]).Length()
		}
		b.fp.points = append(b.fp.points, TessellationPoint{
			Position:                 p,
			Tangent:                  tangent,
			DistanceFromEdgeStart:    b.arc - edgeStart,
			DistanceFromContourStart: b.arc,
		})
	}
	contour.edges = append(contour.edges, [2]int{begin, len(b.fp.points)})
}

// newOpenContour builds an open (uncloses) contour from a single edge
// spanning every given point (so len(pts)-1 sub-edges of one edge).
func newOpenContour(pts ...Point) *fakePath {
	b := newFakeBuilder()
	c := fakeContour{}
	b.addEdge(&c, pts...)
	c.unclosedEnd = len(b.fp.points)
	b.fp.contours = append(b.fp.contours, c)
	return b.fp
}

// newCornerContour builds an open contour made of len(segments)-1
// distinct edges, one per consecutive pair in segments, so interior
// joins are produced between them.
func newCornerContour(segments ...Point) *fakePath {
	b := newFakeBuilder()
	c := fakeContour{}
	for i := 0; i < len(segments)-1; i++ {
		b.addEdge(&c, segments[i], segments[i+1])
	}
	c.unclosedEnd = len(b.fp.points)
	b.fp.contours = append(b.fp.contours, c)
	return b.fp
}

// newClosedPolygon builds a closed contour from corners, adding each
// side as its own edge plus a synthetic closing edge back to the first
// corner.
func newClosedPolygon(corners ...Point) *fakePath {
	b := newFakeBuilder()
	c := fakeContour{}
	for i := 0; i < len(corners)-1; i++ {
		b.addEdge(&c, corners[i], corners[i+1])
	}
	c.unclosedEnd = len(b.fp.points)
	b.addEdge(&c, corners[len(corners)-1], corners[0])
	c.closed = true
	b.fp.contours = append(b.fp.contours, c)
	return b.fp
}

// addDegeneratePoint appends a single-point degenerate contour.
func (f *fakePath) addDegeneratePoint(p Point) {
	begin := len(f.points)
	f.points = append(f.points, TessellationPoint{Position: p})
	f.contours = append(f.contours, fakeContour{
		edges:       [][2]int{{begin, begin + 1}},
		degenerate:  true,
		unclosedEnd: begin + 1,
	})
}
