// SPDX-License-Identifier: MIT
// Package: hbr
//
// mesh.go - mesh registry: facevarying metadata, subdivision strategy,
// vertex and face containers, opposite lookup.
//
// Determinism:
//   - Faces() and BoundaryEdges() follow FacePath order.
//   - Vertices() follows creation order.

package hbr

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/fvarsharp"
)

// edgeKey identifies a directed edge by its endpoint vertex IDs.
type edgeKey struct {
	org, dst int
}

// Mesh owns vertices and faces and carries the metadata half-edges consult:
// facevarying channel layout and the subdivision strategy.
type Mesh struct {
	// facevarying layout
	fvarWidths []int
	fvarStarts []int
	fvarTotal  int

	subdivision Subdivision

	vertices   []*Vertex
	faces      *redblacktree.Tree // FacePath → *Face
	edges      map[edgeKey]*HalfEdge
	nextFaceID int
}

// NewMesh creates an empty mesh. By default there are no facevarying
// channels and no subdivision strategy.
func NewMesh(opts ...MeshOption) *Mesh {
	m := &Mesh{
		faces: redblacktree.NewWith(comparePaths),
		edges: make(map[edgeKey]*HalfEdge),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FVarCount returns the number of facevarying channels.
func (m *Mesh) FVarCount() int { return len(m.fvarWidths) }

// FVarWidth returns the number of floats of channel ch.
func (m *Mesh) FVarWidth(ch int) int { return m.fvarWidths[ch] }

// FVarStart returns the offset of channel ch within a corner's values.
func (m *Mesh) FVarStart(ch int) int { return m.fvarStarts[ch] }

// TotalFVarWidth returns the number of floats stored per face corner.
func (m *Mesh) TotalFVarWidth() int { return m.fvarTotal }

// Subdivision returns the refinement strategy, or nil.
func (m *Mesh) Subdivision() Subdivision { return m.subdivision }

// checkChannel validates a facevarying channel index.
func (m *Mesh) checkChannel(ch int) error {
	if ch < 0 || ch >= len(m.fvarWidths) {
		return errors.Wrapf(ErrChannelOutOfRange, "channel %d of %d", ch, len(m.fvarWidths))
	}
	return nil
}

// NewVertex adds a vertex at pos.
func (m *Mesh) NewVertex(pos r3.Vec) *Vertex {
	v := &Vertex{id: len(m.vertices), mesh: m, position: pos}
	m.vertices = append(m.vertices, v)
	return v
}

// Vertices returns all vertices in creation order.
func (m *Mesh) Vertices() []*Vertex {
	return append([]*Vertex(nil), m.vertices...)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of live faces.
func (m *Mesh) FaceCount() int { return m.faces.Size() }

// Faces returns the live faces ordered by path.
func (m *Mesh) Faces() []*Face {
	out := make([]*Face, 0, m.faces.Size())
	it := m.faces.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Face))
	}
	return out
}

// FaceByPath looks up a live face.
func (m *Mesh) FaceByPath(p FacePath) (*Face, bool) {
	v, ok := m.faces.Get(p)
	if !ok {
		return nil, false
	}
	return v.(*Face), true
}

// HalfEdge returns the half-edge running from org to dst, or nil.
func (m *Mesh) HalfEdge(org, dst *Vertex) *HalfEdge {
	if org == nil || dst == nil || org.mesh != m || dst.mesh != m {
		return nil
	}
	return m.edges[edgeKey{org.id, dst.id}]
}

// NewFace creates a face over verts (in loop order), builds its half-edges
// and pairs each one with the already existing half-edge running the other
// way, if any.
//
// Steps:
//  1. Validate vertices (count, nil, ownership, repeats).
//  2. Resolve opposites through the directed-edge directory; reject a directed
//     edge already in use or an undirected edge already shared by two faces.
//  3. Resolve the face path (new top-level id, or parent path + child index).
//  4. Allocate the edge block (inline for N ≤ 4) and facevarying storage.
//  5. Initialize each half-edge and register it; facevarying verdicts of
//     newly paired edges restart Unknown on both sides.
//
// Nothing is mutated when an error is returned.
func (m *Mesh) NewFace(verts []*Vertex, opts ...FaceOption) (*Face, error) {
	var cfg faceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(verts)
	if n < MinFaceVertices {
		return nil, errors.Wrapf(ErrTooFewVertices, "got %d", n)
	}
	seen := make(map[*Vertex]struct{}, n)
	for i, v := range verts {
		if v == nil {
			return nil, errors.Wrapf(ErrNilVertex, "corner %d", i)
		}
		if v.mesh != m {
			return nil, errors.Wrapf(ErrForeignVertex, "corner %d (%s)", i, v)
		}
		if _, dup := seen[v]; dup {
			return nil, errors.Wrapf(ErrDuplicateVertex, "corner %d (%s)", i, v)
		}
		seen[v] = struct{}{}
	}

	opposites := make([]*HalfEdge, n)
	for i, org := range verts {
		dst := verts[(i+1)%n]
		if existing := m.edges[edgeKey{org.id, dst.id}]; existing != nil {
			klog.Warningf("hbr: rejecting face: %s→%s already used by %s", org, dst, existing.face)
			return nil, errors.Wrapf(ErrNonManifoldEdge, "directed edge %s→%s already used", org, dst)
		}
		if o := m.edges[edgeKey{dst.id, org.id}]; o != nil {
			if o.opposite != nil {
				return nil, errors.Wrapf(ErrNonManifoldEdge, "edge %s-%s already has two faces", org, dst)
			}
			opposites[i] = o
		}
	}

	id := m.nextFaceID
	path, level := FacePath{Top: id}, 0
	if cfg.parent != nil {
		if cfg.parent.mesh != m || cfg.parent.deleted {
			return nil, errors.Wrapf(ErrFaceNotFound, "parent %s", cfg.parent)
		}
		path, level = cfg.parent.path.Child(cfg.childIndex), cfg.parent.level+1
	}
	if _, taken := m.faces.Get(path); taken {
		return nil, errors.Wrapf(ErrDuplicatePath, "path %s", path)
	}
	m.nextFaceID++

	f := &Face{id: id, mesh: m, path: path, level: level}
	if n <= inlineEdges {
		f.edges = f.inline[:n]
	} else {
		f.extra = make([]HalfEdge, n)
		f.edges = f.extra
	}
	if m.fvarTotal > 0 {
		f.fvar = make([]float32, n*m.fvarTotal)
	}
	if len(m.fvarWidths) > 0 {
		// Dimensions are non-negative by construction.
		f.fvarBits, _ = fvarsharp.NewTable(n, len(m.fvarWidths))
	}

	for i := range f.edges {
		e := &f.edges[i]
		e.initialize(opposites[i], i, verts[i], f)
		m.edges[edgeKey{verts[i].id, verts[(i+1)%n].id}] = e
		if e.opposite != nil {
			// The opposite's verdicts were taken while it was a boundary.
			e.InvalidateFVarSharpness()
		}
	}
	m.faces.Put(path, f)
	klog.V(3).Infof("hbr: created %s with %d vertices", f, n)
	return f, nil
}

// DeleteFace removes f: each half-edge is cleared (severing its pairing and
// resolving child ownership) and unregistered.
func (m *Mesh) DeleteFace(f *Face) error {
	if f == nil || f.mesh != m || f.deleted {
		return errors.Wrapf(ErrFaceNotFound, "%v", f)
	}
	for i := range f.edges {
		e := &f.edges[i]
		delete(m.edges, edgeKey{e.origin.id, e.DestinationVertex().id})
		e.Clear()
	}
	m.faces.Remove(f.path)
	f.deleted = true
	klog.V(2).Infof("hbr: deleted %s", f)
	return nil
}

// Clear dismantles the whole mesh. Children are released with RemoveChild,
// so teardown does not depend on face order, and every vertex parent link is
// reset by the vertex container. Old vertices are detached from m: vertex ids
// restart at 0, so NewFace rejects them as foreign.
func (m *Mesh) Clear() {
	it := m.faces.Iterator()
	for it.Next() {
		f := it.Value().(*Face)
		for i := range f.edges {
			f.edges[i].RemoveChild()
			f.edges[i].opposite = nil
		}
		f.deleted = true
	}
	for _, v := range m.vertices {
		v.parent = nil
		v.mesh = nil
	}
	m.faces.Clear()
	m.edges = make(map[edgeKey]*HalfEdge)
	m.vertices = nil
	klog.V(2).Infof("hbr: mesh cleared")
}

// BoundaryEdges returns every half-edge without an opposite, in face path
// order then loop order.
func (m *Mesh) BoundaryEdges() []*HalfEdge {
	var out []*HalfEdge
	m.ApplyOperatorAllEdges(EdgeOperatorFunc(func(e *HalfEdge) {
		if e.IsBoundary() {
			out = append(out, e)
		}
	}))
	return out
}

// ApplyOperatorAllEdges runs op on every half-edge of every live face in
// face path order.
func (m *Mesh) ApplyOperatorAllEdges(op EdgeOperator) {
	for _, f := range m.Faces() {
		f.ApplyOperator(op)
	}
}
