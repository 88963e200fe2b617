package strokedpath

// sentinelNormal and sentinelCapNormal mirror the source's habit of
// initializing per-contour normal tables to recognizably-wrong
// placeholders before (maybe) overwriting them, rather than to the
// zero vector. A degenerate edge with zero sub-edges leaves its entries
// at these sentinels; the cap builders recognize them through
// resolveCapNormal and substitute a reference direction.
var (
	sentinelNormal    = Point{X: 999, Y: 999}
	sentinelCapNormal = Point{X: 111, Y: 111}
)

// ContourNormals is the per-contour table EdgeBuilder produces and the
// join/cap builders consume. Modeling this as an explicit handed-off
// table (rather than a back-pointer into the edge builder) keeps every
// downstream builder a pure function of (path, normals table).
type ContourNormals struct {
	EdgeBeginNormal []Point
	EdgeEndNormal   []Point
	BeginCapNormal  Point
	EndCapNormal    Point
	Degenerate      bool
	Closed          bool
	NumberEdges     int
}

// EdgeBuilder emits the edge point set: for every sub-edge of every
// edge, a 6-vertex quad plus an inter-sub-edge bevel triangle.
type EdgeBuilder struct{}

// Build walks every contour and edge of tp and returns the edge point
// set plus the per-contour normal tables needed by the join and cap
// builders.
func (EdgeBuilder) Build(tp TessellatedPath) (PartitionedPoints, PartitionedIndices, []ContourNormals, uint32, uint32) {
	pb := &partitionBuilder{}
	points := tp.PointData()
	nContours := tp.NumberContours()
	normals := make([]ContourNormals, nContours)

	for o := 0; o < nContours; o++ {
		numEdges := tp.NumberEdges(o)
		closed := tp.ContourIsClosed(o)
		cn := ContourNormals{
			EdgeBeginNormal: make([]Point, numEdges),
			EdgeEndNormal:   make([]Point, numEdges),
			BeginCapNormal:  sentinelCapNormal,
			EndCapNormal:    sentinelCapNormal,
			Degenerate:      tp.ContourIsDegenerate(o),
			Closed:          closed,
			NumberEdges:     numEdges,
		}
		for e := range cn.EdgeBeginNormal {
			cn.EdgeBeginNormal[e] = sentinelNormal
			cn.EdgeEndNormal[e] = sentinelNormal
		}

		lastIdx := numEdges - 1
		lastNonClosing := lastIdx
		if closed {
			lastNonClosing = lastIdx - 1
		}

		for e := 0; e < numEdges; e++ {
			if closed && e == lastIdx {
				// Emitted in the closing pass below.
				continue
			}

			begin, end := tp.EdgeRange(o, e)
			edgePoints := points[begin:end]
			buildEdge(pb, edgePoints, &cn, e)

			if e == 0 {
				cn.BeginCapNormal = cn.EdgeBeginNormal[0]
			}
			if !closed && e == lastNonClosing {
				cn.EndCapNormal = cn.EdgeEndNormal[e]
			}
		}
		// Closed contours never emit caps; EndCapNormal stays at its
		// sentinel in that case.

		normals[o] = cn
	}

	// Closing pass: every closed contour's closing edge, after all
	// non-closing geometry of every contour.
	pb.beginClosingPhase()
	for o := range normals {
		cn := &normals[o]
		if !cn.Closed || cn.NumberEdges == 0 {
			continue
		}
		last := cn.NumberEdges - 1
		begin, end := tp.EdgeRange(o, last)
		buildEdge(pb, points[begin:end], cn, last)
	}

	pts, idx, withoutDepth, totalDepth := pb.finish()
	return pts, idx, normals, withoutDepth, totalDepth
}

// buildEdge emits every sub-edge of one edge (6 vertices + 12 indices
// each) plus the bevel connectors between consecutive sub-edges of the
// same edge, and records the edge's begin/end normals into cn.
func buildEdge(pb *partitionBuilder, edgePoints []TessellationPoint, cn *ContourNormals, e int) {
	r := len(edgePoints)
	if r < 2 {
		// R >= 2 precondition violated (a single-point or empty edge):
		// clamp to zero sub-edges rather than emit negative-sized
		// geometry, per the Open Questions resolution.
		return
	}
	subEdges := r - 1

	var prevNormal Point
	var prevBase uint32
	havePrev := false

	for i := 0; i < subEdges; i++ {
		p := edgePoints[i].Position
		pNext := edgePoints[i+1].Position
		v := pNext.Sub(p)

		var n Point
		if v.LengthSquared() < 1e-12 {
			tangent := edgePoints[i].Tangent
			if !tangent.IsZero() {
				n = tangent.Perp().Normalize()
			} else if havePrev {
				n = prevNormal
			}
		} else {
			n = v.Perp().Normalize()
		}
		prevNormal = n
		havePrev = true

		if i == 0 {
			cn.EdgeBeginNormal[e] = n
		}
		cn.EdgeEndNormal[e] = n

		depth := pb.nextDepthGroup()

		verts := []Vertex{
			{Position: p, PreOffset: n, AuxiliaryOffset: v, OnBoundary: 1, Depth: depth, Tag: uint32(KindEdge),
				DistanceFromEdgeStart: edgePoints[i].DistanceFromEdgeStart, DistanceFromContourStart: edgePoints[i].DistanceFromContourStart},
			{Position: p, PreOffset: n.Mul(-1), AuxiliaryOffset: v, OnBoundary: 1, Depth: depth, Tag: uint32(KindEdge),
				DistanceFromEdgeStart: edgePoints[i].DistanceFromEdgeStart, DistanceFromContourStart: edgePoints[i].DistanceFromContourStart},
			{Position: p, PreOffset: Point{}, AuxiliaryOffset: Point{}, OnBoundary: 0, Depth: depth, Tag: uint32(KindEdge),
				DistanceFromEdgeStart: edgePoints[i].DistanceFromEdgeStart, DistanceFromContourStart: edgePoints[i].DistanceFromContourStart},
			{Position: pNext, PreOffset: n, AuxiliaryOffset: v.Mul(-1), OnBoundary: -1, Depth: depth, Tag: uint32(KindEdge),
				DistanceFromEdgeStart: edgePoints[i+1].DistanceFromEdgeStart, DistanceFromContourStart: edgePoints[i+1].DistanceFromContourStart},
			{Position: pNext, PreOffset: n.Mul(-1), AuxiliaryOffset: v.Mul(-1), OnBoundary: -1, Depth: depth, Tag: uint32(KindEdge),
				DistanceFromEdgeStart: edgePoints[i+1].DistanceFromEdgeStart, DistanceFromContourStart: edgePoints[i+1].DistanceFromContourStart},
			{Position: pNext, PreOffset: Point{}, AuxiliaryOffset: Point{}, OnBoundary: 0, Depth: depth, Tag: uint32(KindEdge),
				DistanceFromEdgeStart: edgePoints[i+1].DistanceFromEdgeStart, DistanceFromContourStart: edgePoints[i+1].DistanceFromContourStart},
		}
		base := pb.appendVertices(verts)

		pb.appendIndices([]uint32{
			base + 0, base + 2, base + 5,
			base + 0, base + 5, base + 3,
			base + 2, base + 1, base + 4,
			base + 2, base + 4, base + 5,
		})

		if i > 0 {
			// Bevel connector between sub-edge i-1 and i, placed on
			// the acute side chosen by lambda computed from the
			// tessellation points' own stored tangents at the two
			// endpoints of the previous sub-edge, points i-1 and i (not a derived chord:
			// on a tessellated curve a point's tangent need not be
			// parallel to either adjacent secant).
			lambda := computeLambda(edgePoints[i-1].Tangent, edgePoints[i].Tangent)
			var offset uint32
			if lambda <= 0 {
				offset = 1
			}
			pb.appendIndices([]uint32{
				prevBase + 5, prevBase + offset + 3, prevBase + offset + 6,
			})
		}
		prevBase = base
	}
}
