// Package bfs provides breadth-first search over the faces of an hbr.Mesh,
// returning face distances (in crossed edges), parent edges, and visit order.
//
// What
//
//   - Explore faces in non-decreasing distance from a start face. Two faces
//     are adjacent when a half-edge of one is paired with a half-edge of the
//     other; boundary edges lead nowhere.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from face → distance from start
//   - Parent: map from face → the half-edge of its predecessor that was crossed
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a face is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows refusing individual edges via WithFilterEdge (e.g. stop at creases
//     or at facevarying seams).
//   - Applies an optional hbr.EdgeOperator to every half-edge of each visited
//     face, so local passes (sharpness edits, edge subdivision) can be limited
//     to a neighborhood.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in face-loop order (Edge(0), Edge(1), ...), so the
//	visit sequence is fully reproducible for a given mesh.
//
// Complexity (F = |Faces|, E = |HalfEdges|)
//
//   - Time:   O(F + E)
//   - Memory: O(F)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(mesh, start,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterEdge(func(e *hbr.HalfEdge) bool { return !e.IsSharp(false) }),
//	)
//	if err != nil {
//	    // ErrMeshNil, ErrStartFaceNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, _ := res.PathTo(target)
package bfs
