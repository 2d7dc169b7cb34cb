package hbr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// quadPair is the unit square split along its diagonal a-c:
//
//	d ---- c
//	|  T1 / |
//	|   /   |
//	| / T0  |
//	a ---- b
//
// T0 = (a, b, c), T1 = (a, c, d). T0's edge 2 (c→a) and T1's edge 0 (a→c)
// are opposites; every other edge is a boundary.
type quadPair struct {
	m          *hbr.Mesh
	a, b, c, d *hbr.Vertex
	t0, t1     *hbr.Face
}

// diagonal returns T0's side (c→a) and T1's side (a→c) of the shared edge.
func (q quadPair) diagonal() (*hbr.HalfEdge, *hbr.HalfEdge) {
	return q.t0.Edge(2), q.t1.Edge(0)
}

func newQuadPair(t *testing.T, opts ...hbr.MeshOption) quadPair {
	t.Helper()
	m := hbr.NewMesh(opts...)
	q := quadPair{
		m: m,
		a: m.NewVertex(r3.Vec{X: 0, Y: 0}),
		b: m.NewVertex(r3.Vec{X: 1, Y: 0}),
		c: m.NewVertex(r3.Vec{X: 1, Y: 1}),
		d: m.NewVertex(r3.Vec{X: 0, Y: 1}),
	}
	var err error
	q.t0, err = m.NewFace([]*hbr.Vertex{q.a, q.b, q.c})
	require.NoError(t, err)
	q.t1, err = m.NewFace([]*hbr.Vertex{q.a, q.c, q.d})
	require.NoError(t, err)
	return q
}

// setPlanarUV writes each corner's x/y position into every channel whose
// width is 2, so facevarying data is continuous everywhere.
func setPlanarUV(t *testing.T, m *hbr.Mesh) {
	t.Helper()
	for _, f := range m.Faces() {
		for i := 0; i < f.NumVertices(); i++ {
			p := f.Vertex(i).Position()
			for ch := 0; ch < m.FVarCount(); ch++ {
				vals := make([]float32, m.FVarWidth(ch))
				if len(vals) == 2 {
					vals[0], vals[1] = float32(p.X), float32(p.Y)
				}
				require.NoError(t, f.SetFVarData(i, ch, vals))
			}
		}
	}
}

// polygon builds a mesh holding a single n-gon.
func polygon(t *testing.T, n int) (*hbr.Mesh, *hbr.Face) {
	t.Helper()
	m := hbr.NewMesh()
	verts := make([]*hbr.Vertex, n)
	for i := range verts {
		verts[i] = m.NewVertex(r3.Vec{X: float64(i), Y: float64(i * i)})
	}
	f, err := m.NewFace(verts)
	require.NoError(t, err)
	return m, f
}

// recordingSubdivision is a midpoint strategy that counts its calls.
type recordingSubdivision struct {
	hbr.MidpointSubdivision
	created   int
	neighbors []*hbr.HalfEdge
}

func (r *recordingSubdivision) Subdivide(m *hbr.Mesh, e *hbr.HalfEdge) *hbr.Vertex {
	r.created++
	return r.MidpointSubdivision.Subdivide(m, e)
}

func (r *recordingSubdivision) GuaranteeNeighbor(_ *hbr.Mesh, e *hbr.HalfEdge) {
	r.neighbors = append(r.neighbors, e)
}

// nilSubdivision is a broken strategy that never produces a vertex.
type nilSubdivision struct{}

func (nilSubdivision) Subdivide(*hbr.Mesh, *hbr.HalfEdge) *hbr.Vertex { return nil }
func (nilSubdivision) GuaranteeNeighbor(*hbr.Mesh, *hbr.HalfEdge)     {}
