// Package gg provides vector path construction and GPU-ready stroke
// tessellation for Go.
//
// # Overview
//
// gg builds 2D vector paths (Path, built from MoveTo/LineTo/QuadraticTo/
// CubicTo/Close segments) and turns a path's stroke outline into
// width-independent triangle meshes via Path.Stroked. The generated
// StrokedPath carries offset-encoded vertices for edges, joins, and
// caps plus their index arrays, so a GPU shader can scale the stroke to
// any width, miter limit, or dash pattern without re-tessellating.
//
// # Quick Start
//
//	import "github.com/gogpu/gg"
//
//	p := &gg.Path{}
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//
//	sp, err := p.Stroked(0.1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	edges := sp.Points(gg.PointSetEdges, true)
//
// # Architecture
//
//   - Public API: Path, Point, Matrix, Rect, StrokedPath
//   - internal/path: flattens a Path into tessellated polyline contours
//     with per-vertex arc-length metadata
//   - internal/strokedpath: consumes those contours and produces the
//     offset-encoded edge/join/cap meshes
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases from +X toward +Y
//     (clockwise on screen)
package gg
