package strokedpath

import "log/slog"

// pointSetData bundles one point set's generated geometry together
// with the per-partition depth counts the Orchestrator reports through
// NumberDepth.
type pointSetData struct {
	points        PartitionedPoints
	indices       PartitionedIndices
	depthWithout  uint32
	depthTotal    uint32
	joinLocations map[joinKey]JoinLocation // nil for non-join point sets
}

func (d pointSetData) numberDepth(includingClosing bool) uint32 {
	if includingClosing {
		return d.depthTotal
	}
	return d.depthWithout
}

// StrokedPath is the immutable result of tessellating a stroked path:
// every mesh needed to stroke it at any future width, miter limit, and
// dash pattern, built once from a TessellatedPath and never mutated
// again. Concurrent reads need no synchronization; the one exception is
// the lazily-built PainterAttributeData, whose first access must be
// serialized by the caller (see PainterData).
type StrokedPath struct {
	sets [numPointSets]pointSetData

	contourNumJoins []int

	painter *painterCache
}

// New builds a StrokedPath from a tessellated input path. Construction
// is eager and synchronous; the returned value is safe for concurrent
// reads from every goroutine once New returns.
func New(tp TessellatedPath, opts ...Option) (*StrokedPath, error) {
	if tp == nil {
		return nil, ErrNilInput
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tau := o.curveTessellation
	if params := tp.TessellationParameters(); params.CurveTessellation > 0 {
		tau = params.CurveTessellation
	}

	eb := EdgeBuilder{}
	edgePts, edgeIdx, normals, edgeWithout, edgeTotal := eb.Build(tp)

	bevelPts, bevelIdx, bevelLoc, bevelWithout, bevelTotal := buildJoinSet(tp, normals, fillBevelJoin)
	roundedJoinFill := func(cjd CommonJoinData) ([]Vertex, []uint32) { return fillRoundedJoin(cjd, tau) }
	roundedPts, roundedIdx, roundedLoc, roundedWithout, roundedTotal := buildJoinSet(tp, normals, roundedJoinFill)
	miterPts, miterIdx, miterLoc, miterWithout, miterTotal := buildJoinSet(tp, normals, fillMiterJoin)
	capJoinPts, capJoinIdx, capJoinLoc, capJoinWithout, capJoinTotal := buildJoinSet(tp, normals, fillCapJoin)

	squareFill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillSquareOrFlatCap(ccd, KindSquareCap) }
	flatFill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillSquareOrFlatCap(ccd, KindFlatCap) }
	roundedCapFill := func(ccd CommonCapData) ([]Vertex, []uint32) { return fillRoundedCap(ccd, tau) }

	squarePts, squareIdx, squareWithout, squareTotal := buildCapSet(tp, normals, false, squareFill)
	roundedCapPts, roundedCapIdx, roundedCapWithout, roundedCapTotal := buildCapSet(tp, normals, false, roundedCapFill)
	flatPts, flatIdx, flatWithout, flatTotal := buildCapSet(tp, normals, true, flatFill)

	sp := &StrokedPath{}
	sp.sets[PointSetEdges] = pointSetData{edgePts, edgeIdx, edgeWithout, edgeTotal, nil}
	sp.sets[PointSetBevelJoins] = pointSetData{bevelPts, bevelIdx, bevelWithout, bevelTotal, bevelLoc}
	sp.sets[PointSetRoundedJoins] = pointSetData{roundedPts, roundedIdx, roundedWithout, roundedTotal, roundedLoc}
	sp.sets[PointSetMiterJoins] = pointSetData{miterPts, miterIdx, miterWithout, miterTotal, miterLoc}
	sp.sets[PointSetCapJoins] = pointSetData{capJoinPts, capJoinIdx, capJoinWithout, capJoinTotal, capJoinLoc}
	sp.sets[PointSetSquareCaps] = pointSetData{squarePts, squareIdx, squareWithout, squareTotal, nil}
	sp.sets[PointSetRoundedCaps] = pointSetData{roundedCapPts, roundedCapIdx, roundedCapWithout, roundedCapTotal, nil}
	sp.sets[PointSetFlatCaps] = pointSetData{flatPts, flatIdx, flatWithout, flatTotal, nil}

	sp.contourNumJoins = make([]int, len(normals))
	for o, cn := range normals {
		if cn.Closed {
			sp.contourNumJoins[o] = cn.NumberEdges
		} else if cn.NumberEdges > 0 {
			sp.contourNumJoins[o] = cn.NumberEdges - 1
		}
	}

	sp.painter = newPainterCache(sp)

	o.logger.Debug("strokedpath: built",
		slog.Int("contours", tp.NumberContours()),
		slog.Int("edge_vertices", edgePts.Len(true)),
		slog.Int("bevel_joins", len(bevelLoc)),
		slog.Int("miter_joins", len(miterLoc)),
		slog.Int("rounded_joins", len(roundedLoc)))

	return sp, nil
}

// Points returns the vertex view of one point set.
func (sp *StrokedPath) Points(set PointSet, includingClosingEdge bool) []Vertex {
	return sp.sets[set].points.View(includingClosingEdge)
}

// Indices returns the index view of one point set.
func (sp *StrokedPath) Indices(set PointSet, includingClosingEdge bool) []uint32 {
	return sp.sets[set].indices.View(includingClosingEdge)
}

// NumberDepth returns the number of distinct depth values used by a
// point set's view; the set of depths present equals [0, NumberDepth).
func (sp *StrokedPath) NumberDepth(set PointSet, includingClosingEdge bool) uint32 {
	return sp.sets[set].numberDepth(includingClosingEdge)
}

// NumberContours returns the number of contours in the underlying path.
func (sp *StrokedPath) NumberContours() int { return len(sp.contourNumJoins) }

// NumberJoins returns the number of joins of a contour: number_edges(c)
// for a closed contour (interior joins plus the two closing joins), or
// number_edges(c)-1 for an open contour (interior joins only, since an
// open contour has no closing edge to join against).
func (sp *StrokedPath) NumberJoins(contour int) int {
	return sp.contourNumJoins[contour]
}

// JoinPointsRange returns the [begin, end) vertex range, within
// Points(set, true), belonging to one join. Empty if set is not a join
// point set.
func (sp *StrokedPath) JoinPointsRange(set PointSet, contour, join int) (int, int) {
	loc, ok := sp.sets[set].joinLocations[joinKey{Contour: contour, Join: join}]
	if !ok {
		return 0, 0
	}
	return loc.AttribRange()
}

// JoinIndicesRange returns the [begin, end) index range, within
// Indices(set, true), belonging to one join. Empty if set is not a join
// point set.
func (sp *StrokedPath) JoinIndicesRange(set PointSet, contour, join int) (int, int) {
	loc, ok := sp.sets[set].joinLocations[joinKey{Contour: contour, Join: join}]
	if !ok {
		return 0, 0
	}
	return loc.IndexRange()
}
