// Package opensubdiv is the root of a hierarchical half-edge mesh library:
// the topology layer that subdivision surface refinement is built on.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	hbr/        Mesh, Face, Vertex and HalfEdge (loop traversal, opposite
//	            pairing, crease sharpness, edge-child ownership, cached
//	            facevarying discontinuity tracking)
//	fvarsharp/  the packed two-bit per-channel state table behind that cache
//	builder/    fixture meshes (polygons, quad sheets, strips, Platonic shells)
//	bfs/        breadth-first search and components across paired half-edges
//	cmd/        hbrdump, a diagnostics CLI
//
// Quick start
//
//	m, _ := builder.BuildMesh(
//	    []hbr.MeshOption{hbr.WithFVarWidths(2), hbr.WithSubdivision(hbr.MidpointSubdivision{})},
//	    []builder.BuilderOption{builder.WithPlanarUV()},
//	    builder.QuadGrid(4, 4),
//	)
//	for _, e := range m.BoundaryEdges() {
//	    seam, _ := e.FVarInfiniteSharp(0) // true: boundaries are always seams
//	    _ = seam
//	}
//	children, _ := m.SubdivideEdges()
//
// Meshes are not safe for concurrent mutation; distinct meshes are
// independent.
package opensubdiv
