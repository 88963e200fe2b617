// Package strokedpath turns a pre-tessellated planar path into the
// GPU-friendly triangle meshes needed to stroke it at any width, miter
// limit, and dash pattern without recomputing geometry.
//
// # Algorithm Overview
//
// The generator is a pipeline of six leaf builders driven by one
// orchestrator: EdgeBuilder walks every sub-edge of every edge and
// records per-contour normal tables; BevelJoinBuilder, MiterJoinBuilder
// and RoundedJoinBuilder consume those tables to fill interior and
// closing corners; the cap builders fill the two endpoints of open
// contours. Every vertex is "offset-encoded": its position, pre_offset
// and auxiliary_offset fields let a shader reconstruct the final
// stroke-width-scaled position without the generator ever seeing a
// width, miter limit, or dash state.
//
// # Depth ordering
//
// Each builder assigns a local, monotonically increasing depth value
// per primitive group, then inverts it once its pass finishes so
// geometry drawn first carries the largest depth. A shader using a
// strictly-greater depth test never shades a pixel twice for the same
// path.
//
// # Partitioned buffers
//
// Point sets that distinguish a contour's closing edge expose two
// zero-copy views over one backing array: closing-edge vertices sit at
// the tail, closing-edge indices sit at the head.
//
// # Usage
//
//	sp, err := strokedpath.New(tessellated, strokedpath.WithCurveTessellation(0.2))
//	verts := sp.Points(strokedpath.PointSetEdges, true)
//	idx := sp.Indices(strokedpath.PointSetEdges, true)
//
// # References
//
// Modeled on FastUIDraw's stroked-path generator (stroked_path.cpp) and
// on the adaptive arc-sampling technique used throughout the stroking
// literature (tiny-skia, kurbo).
package strokedpath
