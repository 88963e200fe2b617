package strokedpath

// joinFiller produces the local vertices/indices for one join given its
// CommonJoinData. BevelJoin, MiterJoin and RoundedJoin all fit this
// signature; the generic driver below is shared by all three builders
// so the framework behavior described in the component design (depth
// stamping, JoinLocation bookkeeping, partitioning) is implemented
// exactly once.
type joinFiller func(cjd CommonJoinData) ([]Vertex, []uint32)

// buildJoinSet drives one join builder across every contour of tp,
// producing the joins between edges e-1 and e for 1 <= e < numberEdges(o)
// of an open contour, or 1 <= e < numberEdges(o)-1 of a closed contour
// plus, when numberEdges(o) >= 2, its two closing joins. Each call is
// wrapped to record its (attrib_range, index_range) into the
// JoinLocation table and to stamp a monotonically increasing depth,
// inverted per the two-pass discipline once the whole builder finishes.
func buildJoinSet(tp TessellatedPath, normals []ContourNormals, fill joinFiller) (PartitionedPoints, PartitionedIndices, map[joinKey]JoinLocation, uint32, uint32) {
	pb := &partitionBuilder{}
	locations := make(map[joinKey]JoinLocation)
	closingJoins := make(map[joinKey]bool)
	var closingEmits []func()
	points := tp.PointData()

	for o, cn := range normals {
		numEdges := cn.NumberEdges
		if numEdges == 0 {
			continue
		}

		emit := func(joinIdx int, p, n0, n1 Point) {
			verts, idx := fill(newCommonJoinData(p, n0, n1))
			depth := pb.nextDepthGroup()
			for i := range verts {
				verts[i].Depth = depth
			}
			attribBegin := pb.currentVertexCount()
			indexBegin := pb.currentIndexCount()
			base := pb.appendVertices(verts)
			offsetIdx := make([]uint32, len(idx))
			for i, ix := range idx {
				offsetIdx[i] = ix + base
			}
			pb.appendIndices(offsetIdx)
			key := joinKey{Contour: o, Join: joinIdx}
			locations[key] = JoinLocation{
				AttribBegin: attribBegin, AttribEnd: pb.currentVertexCount(),
				IndexBegin: indexBegin, IndexEnd: pb.currentIndexCount(),
			}
			if pb.inClosingPhase {
				closingJoins[key] = true
			}
		}

		pointAt := func(edge int) Point {
			begin, _ := tp.EdgeRange(o, edge)
			return points[begin].Position
		}

		if cn.Closed {
			lastNonClosing := numEdges - 2
			closingIdx := numEdges - 1
			for e := 1; e <= lastNonClosing; e++ {
				emit(e-1, pointAt(e), cn.EdgeEndNormal[e-1], cn.EdgeBeginNormal[e])
			}
			if numEdges >= 2 {
				// Emitted in the closing pass below.
				closingEmits = append(closingEmits, func() {
					emit(numEdges-2, pointAt(closingIdx), cn.EdgeEndNormal[lastNonClosing], cn.EdgeBeginNormal[closingIdx])
					emit(numEdges-1, pointAt(0), cn.EdgeEndNormal[closingIdx], cn.EdgeBeginNormal[0])
				})
			}
		} else {
			for e := 1; e < numEdges; e++ {
				emit(e-1, pointAt(e), cn.EdgeEndNormal[e-1], cn.EdgeBeginNormal[e])
			}
		}
	}

	// Closing pass: every closed contour's closing joins, after all
	// non-closing joins of every contour.
	pb.beginClosingPhase()
	for _, emitClosing := range closingEmits {
		emitClosing()
	}

	// Shift each range into the combined views: closing vertices follow
	// the non-closing ones, non-closing indices follow the closing ones.
	vertShift, idxShift := len(pb.nonClosingVerts), len(pb.closingIdx)
	for key, loc := range locations {
		if closingJoins[key] {
			loc.AttribBegin += vertShift
			loc.AttribEnd += vertShift
		} else {
			loc.IndexBegin += idxShift
			loc.IndexEnd += idxShift
		}
		locations[key] = loc
	}

	pts, idx, withoutDepth, totalDepth := pb.finish()
	return pts, idx, locations, withoutDepth, totalDepth
}

func (b *partitionBuilder) currentVertexCount() int {
	if b.inClosingPhase {
		return len(b.closingVerts)
	}
	return len(b.nonClosingVerts)
}

func (b *partitionBuilder) currentIndexCount() int {
	if b.inClosingPhase {
		return len(b.closingIdx)
	}
	return len(b.nonClosingIdx)
}
