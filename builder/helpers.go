// Package builder provides internal helper functions used by Constructor
// implementations to emit vertices and faces.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: prefix errors with the constructor's method name.
//   - Policies (UV, crease) are applied only to the faces a constructor emits.
package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// addVertices places each canonical position through cfg and adds it to m,
// in index order.
//
// Complexity: O(len(pts)) time and space.
func addVertices(m *hbr.Mesh, cfg builderConfig, pts []r3.Vec) []*hbr.Vertex {
	verts := make([]*hbr.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = m.NewVertex(cfg.place(p))
	}
	return verts
}

// emitFaces creates one face per index loop (indices into verts), in order,
// then applies the configured UV and crease policies to the new faces.
//
// A face rejected by the mesh is reported as ErrConstructFailed; the hbr
// sentinel is wrapped as well, so both match with errors.Is.
//
// Complexity: O(Σ|loop|) time.
func emitFaces(m *hbr.Mesh, cfg builderConfig, method string, verts []*hbr.Vertex, loops [][]int) ([]*hbr.Face, error) {
	faces := make([]*hbr.Face, 0, len(loops))
	for fi, loop := range loops {
		vs := make([]*hbr.Vertex, len(loop))
		for i, idx := range loop {
			vs[i] = verts[idx]
		}
		f, err := m.NewFace(vs)
		if err != nil {
			return nil, fmt.Errorf("%s: face %d %v: %w: %w", method, fi, loop, ErrConstructFailed, err)
		}
		faces = append(faces, f)
	}

	if cfg.planarUV {
		if err := applyPlanarUV(m, cfg, faces); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	if cfg.hasCrease {
		for _, f := range faces {
			for i := 0; i < f.NumVertices(); i++ {
				if err := f.Edge(i).SetSharpness(cfg.crease); err != nil {
					return nil, fmt.Errorf("%s: %w", method, err)
				}
			}
		}
	}
	return faces, nil
}

// applyPlanarUV writes the x/y of each corner's vertex into every channel.
func applyPlanarUV(m *hbr.Mesh, cfg builderConfig, faces []*hbr.Face) error {
	for _, f := range faces {
		for corner, v := range f.Vertices() {
			for ch := 0; ch < m.FVarCount(); ch++ {
				if err := f.SetFVarData(corner, ch, cfg.uvFor(v, m.FVarWidth(ch))); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
