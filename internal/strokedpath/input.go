package strokedpath

// TessellationPoint is one point of the pre-tessellated input path: a
// position, the tangent at that position, and arc-length bookkeeping.
type TessellationPoint struct {
	Position                 Point
	Tangent                  Point
	DistanceFromEdgeStart    float64
	DistanceFromContourStart float64
}

// TessellationParameters carries the parameters the curve tessellator
// used to produce the input points; the only one the generator itself
// needs is CurveTessellation, the angular step used to size arc fans.
type TessellationParameters struct {
	CurveTessellation float64
}

// TessellatedPath is the read-only input this package consumes. It is
// produced by an external collaborator (the curve tessellator); this
// package never constructs one, only reads through the interface. See
// internal/path.Tessellate for the concrete adapter wired to gg.Path.
type TessellatedPath interface {
	// NumberContours returns the number of contours in the path.
	NumberContours() int
	// NumberEdges returns the number of edges of a contour. For a
	// closed contour this includes the synthetic closing edge as the
	// last index; for an open contour every edge is a real edge.
	NumberEdges(contour int) int
	// EdgeRange returns the half-open [begin, end) range of indices
	// into PointData() belonging to an edge.
	EdgeRange(contour, edge int) (begin, end int)
	// PointData returns the flat array of all tessellated points.
	PointData() []TessellationPoint
	// UnclosedContourPointData returns the points of a contour without
	// its synthetic closing edge, used by caps at open-contour
	// endpoints.
	UnclosedContourPointData(contour int) []TessellationPoint
	// ContourIsDegenerate reports whether a contour collapsed to a
	// single point (or otherwise has no usable tangent anywhere).
	ContourIsDegenerate(contour int) bool
	// ContourIsClosed reports whether a contour was explicitly closed
	// (Path.Close) and therefore carries a synthetic closing edge and
	// no caps, as opposed to an open contour which has two caps and no
	// closing edge or closing joins.
	ContourIsClosed(contour int) bool
	// TessellationParameters returns the parameters used to produce
	// this tessellation.
	TessellationParameters() TessellationParameters
}
