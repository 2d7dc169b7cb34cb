// SPDX-License-Identifier: MIT
// Package: hbr
//
// subdivision.go - the pluggable refinement strategy and a linear default.

package hbr

import (
	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/spatial/r3"
)

// Subdivision synthesizes next-level topology on demand. Implementations
// own the geometric rules; half-edges only dispatch to them.
type Subdivision interface {
	// Subdivide creates the child vertex of e in m. It must return a vertex
	// without a parent link; HalfEdge.Subdivide sets it.
	Subdivide(m *Mesh, e *HalfEdge) *Vertex
	// GuaranteeNeighbor makes sure the face across e exists.
	GuaranteeNeighbor(m *Mesh, e *HalfEdge)
}

// MidpointSubdivision places every edge child at the edge midpoint. It
// applies no smoothing and never synthesizes faces.
type MidpointSubdivision struct{}

// Subdivide creates a vertex halfway between e's endpoints.
func (MidpointSubdivision) Subdivide(m *Mesh, e *HalfEdge) *Vertex {
	a, b := e.OriginVertex().Position(), e.DestinationVertex().Position()
	return m.NewVertex(r3.Scale(0.5, r3.Add(a, b)))
}

// GuaranteeNeighbor only reports a missing neighbor.
func (MidpointSubdivision) GuaranteeNeighbor(_ *Mesh, e *HalfEdge) {
	if e.IsBoundary() {
		klog.V(2).Infof("hbr: midpoint: no face across %s", e)
	}
}

// SubdivideEdges subdivides every edge of every live face in path order and
// returns the number of distinct child vertices. Paired half-edges share
// their child, so an interior edge is counted once.
func (m *Mesh) SubdivideEdges() (int, error) {
	seen := make(map[*Vertex]struct{})
	var err error
	m.ApplyOperatorAllEdges(EdgeOperatorFunc(func(e *HalfEdge) {
		if err != nil {
			return
		}
		var c *Vertex
		if c, err = e.Subdivide(); err == nil {
			seen[c] = struct{}{}
		}
	}))
	if err != nil {
		return 0, err
	}
	klog.V(2).Infof("hbr: %d edge children over %d faces", len(seen), m.FaceCount())
	return len(seen), nil
}
