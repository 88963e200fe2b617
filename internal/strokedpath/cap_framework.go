package strokedpath

// capFiller produces the local vertices/indices for one cap given its
// CommonCapData.
type capFiller func(ccd CommonCapData) ([]Vertex, []uint32)

// buildCapSet drives one cap builder across every contour of tp.
// Closed contours never get caps. If skipDegenerate is true (flat
// caps), degenerate contours are skipped entirely; otherwise (square
// and rounded caps) a degenerate contour still gets both its caps,
// using an arbitrary reference normal since a collapsed contour has no
// tangent of its own — rounded caps then combine their two half-fans
// into a full disc, per the component design.
func buildCapSet(tp TessellatedPath, normals []ContourNormals, skipDegenerate bool, fill capFiller) (PartitionedPoints, PartitionedIndices, uint32, uint32) {
	pb := &partitionBuilder{}

	for o, cn := range normals {
		if cn.Closed {
			continue
		}
		if cn.Degenerate && skipDegenerate {
			continue
		}

		contourPoints := tp.UnclosedContourPointData(o)
		if len(contourPoints) == 0 {
			continue
		}
		front := contourPoints[0].Position
		back := contourPoints[len(contourPoints)-1].Position

		emit := func(p Point, normal Point, isStart bool) {
			ccd := newCommonCapData(p, resolveCapNormal(normal), isStart)
			verts, idx := fill(ccd)
			depth := pb.nextDepthGroup()
			for i := range verts {
				verts[i].Depth = depth
			}
			base := pb.appendVertices(verts)
			offsetIdx := make([]uint32, len(idx))
			for i, ix := range idx {
				offsetIdx[i] = ix + base
			}
			pb.appendIndices(offsetIdx)
		}

		emit(front, cn.BeginCapNormal, true)
		emit(back, cn.EndCapNormal, false)
	}

	pts, idx, withoutDepth, totalDepth := pb.finish()
	return pts, idx, withoutDepth, totalDepth
}

// resolveCapNormal substitutes an arbitrary reference direction for a
// normal that was never computed (a degenerate contour whose sole edge
// had fewer than two tessellation points never assigns a real normal).
func resolveCapNormal(n Point) Point {
	if n == sentinelCapNormal || n == sentinelNormal {
		return Point{X: 1, Y: 0}
	}
	return n
}
