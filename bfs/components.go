package bfs

import "github.com/mkuruc/OpenSubdiv/hbr"

// Components partitions the live faces of m into regions connected across
// paired half-edges that pass the configured edge filter. With
// WithFilterEdge(e => !e.IsSharp(false)) the regions are the crease-bounded
// patches of the mesh.
//
// Regions are seeded in face-path order and each lists its faces in BFS
// order, so the result is deterministic. MaxDepth and the hooks apply to
// every per-region search; the first error aborts the partition.
//
// Time:   O(F + E).
// Memory: O(F).
func Components(m *hbr.Mesh, opts ...Option) ([][]*hbr.Face, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	seen := make(map[*hbr.Face]bool, m.FaceCount())
	var comps [][]*hbr.Face
	for _, f := range m.Faces() {
		if seen[f] {
			continue
		}
		res, err := BFS(m, f, opts...)
		if err != nil {
			return comps, err
		}
		for _, g := range res.Order {
			seen[g] = true
		}
		comps = append(comps, res.Order)
	}
	return comps, nil
}
