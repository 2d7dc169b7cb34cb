package hbr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// TestNewFace_Rejects lists every malformed face definition.
func TestNewFace_Rejects(t *testing.T) {
	q := newQuadPair(t)
	e := q.m.NewVertex(r3.Vec{X: 2})
	foreign := hbr.NewMesh().NewVertex(r3.Vec{})

	cases := []struct {
		name  string
		verts []*hbr.Vertex
		want  error
	}{
		{"two vertices", []*hbr.Vertex{q.a, q.b}, hbr.ErrTooFewVertices},
		{"nil vertex", []*hbr.Vertex{q.b, nil, e}, hbr.ErrNilVertex},
		{"foreign vertex", []*hbr.Vertex{q.b, foreign, e}, hbr.ErrForeignVertex},
		{"repeated vertex", []*hbr.Vertex{q.b, e, q.b}, hbr.ErrDuplicateVertex},
		{"directed edge reused", []*hbr.Vertex{q.a, q.b, e}, hbr.ErrNonManifoldEdge},
		{"third face on diagonal", []*hbr.Vertex{q.c, q.a, e}, hbr.ErrNonManifoldEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := q.m.NewFace(tc.verts)
			assert.Nil(t, f)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, 2, q.m.FaceCount(), "a rejected face leaves the mesh untouched")
		})
	}
}

// TestNewFace_PairsBoundaries stitches a third face onto a boundary edge.
func TestNewFace_PairsBoundaries(t *testing.T) {
	q := newQuadPair(t)
	e := q.m.NewVertex(r3.Vec{X: 2, Y: 0.5})
	bc := q.t0.Edge(1)
	require.True(t, bc.IsBoundary())
	require.NoError(t, bc.SetSharpness(0.75))

	f, err := q.m.NewFace([]*hbr.Vertex{q.b, e, q.c})
	require.NoError(t, err)

	cb := f.Edge(2)
	assert.Same(t, bc, cb.Opposite())
	assert.Same(t, cb, bc.Opposite())
	assert.Equal(t, float32(0.75), cb.Sharpness(), "a new side copies its opposite's sharpness")
	assert.Len(t, q.m.BoundaryEdges(), 5)
}

// TestMesh_FacePaths orders child faces right after their parent.
func TestMesh_FacePaths(t *testing.T) {
	q := newQuadPair(t)
	tri := func() []*hbr.Vertex {
		return []*hbr.Vertex{q.m.NewVertex(r3.Vec{}), q.m.NewVertex(r3.Vec{X: 1}), q.m.NewVertex(r3.Vec{Y: 1})}
	}

	c1, err := q.m.NewFace(tri(), hbr.WithParentFace(q.t0, 1))
	require.NoError(t, err)
	c0, err := q.m.NewFace(tri(), hbr.WithParentFace(q.t0, 0))
	require.NoError(t, err)
	g, err := q.m.NewFace(tri(), hbr.WithParentFace(c0, 3))
	require.NoError(t, err)

	assert.Equal(t, "0.1", c1.Path().String())
	assert.Equal(t, "0.0.3", g.Path().String())
	assert.Equal(t, 2, g.Level())
	assert.Equal(t, []*hbr.Face{q.t0, c0, g, c1, q.t1}, q.m.Faces())

	found, ok := q.m.FaceByPath(hbr.FacePath{Top: 0, Children: []int{0, 3}})
	assert.True(t, ok)
	assert.Same(t, g, found)
	_, ok = q.m.FaceByPath(hbr.FacePath{Top: 9})
	assert.False(t, ok)

	_, err = q.m.NewFace(tri(), hbr.WithParentFace(q.t0, 1))
	assert.True(t, errors.Is(err, hbr.ErrDuplicatePath))

	require.NoError(t, q.m.DeleteFace(c1))
	_, err = q.m.NewFace(tri(), hbr.WithParentFace(c1, 0))
	assert.True(t, errors.Is(err, hbr.ErrFaceNotFound))
}

// TestMesh_SubdivideEdges creates one child per geometric edge.
func TestMesh_SubdivideEdges(t *testing.T) {
	q := newQuadPair(t, hbr.WithSubdivision(hbr.MidpointSubdivision{}))
	n, err := q.m.SubdivideEdges()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 9, q.m.VertexCount())

	n, err = q.m.SubdivideEdges()
	require.NoError(t, err)
	assert.Equal(t, 5, n, "children are reused")
	assert.Equal(t, 9, q.m.VertexCount())

	_, err = newQuadPair(t).m.SubdivideEdges()
	assert.True(t, errors.Is(err, hbr.ErrNoSubdivision))
}

// TestMesh_Clear tears everything down and orphans every child.
func TestMesh_Clear(t *testing.T) {
	q := newQuadPair(t, hbr.WithSubdivision(hbr.MidpointSubdivision{}))
	_, err := q.m.SubdivideEdges()
	require.NoError(t, err)
	children := make([]*hbr.Vertex, 0, 5)
	for _, v := range q.m.Vertices() {
		if v.ParentEdge() != nil {
			children = append(children, v)
		}
	}
	require.Len(t, children, 5)
	ca, _ := q.diagonal()

	q.m.Clear()

	assert.Equal(t, 0, q.m.FaceCount())
	assert.Equal(t, 0, q.m.VertexCount())
	assert.True(t, q.t0.IsDeleted())
	assert.Nil(t, ca.Opposite())
	assert.Nil(t, ca.Child())
	for _, c := range children {
		assert.Nil(t, c.ParentEdge())
	}
	assert.Nil(t, q.a.Mesh(), "old vertices are detached")
}

// TestMesh_ClearRejectsStaleVertices reuses a cleared mesh: vertex ids start
// over, so a pre-Clear vertex must not alias a new one.
func TestMesh_ClearRejectsStaleVertices(t *testing.T) {
	q := newQuadPair(t, hbr.WithFVarWidths(2))
	q.m.Clear()

	v0 := q.m.NewVertex(r3.Vec{X: 0, Y: 0})
	v1 := q.m.NewVertex(r3.Vec{X: 1, Y: 0})
	v2 := q.m.NewVertex(r3.Vec{X: 1, Y: 1})
	v3 := q.m.NewVertex(r3.Vec{X: 0, Y: 1})
	f0, err := q.m.NewFace([]*hbr.Vertex{v0, v1, v3})
	require.NoError(t, err)

	f, err := q.m.NewFace([]*hbr.Vertex{q.b, q.a, v2})
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, hbr.ErrForeignVertex), "got %v", err)
	assert.Nil(t, q.m.HalfEdge(q.a, q.b))
	assert.True(t, f0.Edge(0).IsBoundary())

	// Built from live vertices the same loop pairs correctly.
	f1, err := q.m.NewFace([]*hbr.Vertex{v1, v0, v2})
	require.NoError(t, err)
	e := f1.Edge(0)
	require.Same(t, f0.Edge(0), e.Opposite())
	sharp, err := e.FVarInfiniteSharp(0)
	require.NoError(t, err)
	assert.False(t, sharp, "both sides carry zero data")
}

// TestMesh_HalfEdgeForeignVertices looks up an edge with another mesh's
// vertices, whose ids collide with this mesh's.
func TestMesh_HalfEdgeForeignVertices(t *testing.T) {
	q := newQuadPair(t)
	other := hbr.NewMesh()
	o0 := other.NewVertex(r3.Vec{})
	o1 := other.NewVertex(r3.Vec{X: 1})
	require.Equal(t, q.a.ID(), o0.ID())
	require.Equal(t, q.b.ID(), o1.ID())

	assert.Nil(t, q.m.HalfEdge(o0, o1))
	assert.Nil(t, q.m.HalfEdge(q.a, o1))
	assert.Same(t, q.t0.Edge(0), q.m.HalfEdge(q.a, q.b))
}

// TestMesh_FVarLayout resolves channel offsets.
func TestMesh_FVarLayout(t *testing.T) {
	m := hbr.NewMesh(hbr.WithFVarWidths(2, 3, 1))
	assert.Equal(t, 3, m.FVarCount())
	assert.Equal(t, 6, m.TotalFVarWidth())
	assert.Equal(t, []int{0, 2, 5}, []int{m.FVarStart(0), m.FVarStart(1), m.FVarStart(2)})
	assert.Equal(t, 3, m.FVarWidth(1))

	assert.Panics(t, func() { hbr.WithFVarWidths(2, -1) })
	assert.Panics(t, func() { hbr.WithSubdivision(nil) })
}

// TestFacePath covers ordering, rendering and slice independence.
func TestFacePath(t *testing.T) {
	root := hbr.FacePath{Top: 2}
	a := root.Child(1)
	b := a.Child(0)
	c := a.Child(4)

	assert.Equal(t, "2.1.0", b.String())
	assert.Equal(t, "2.1.4", c.String(), "siblings do not share storage")
	assert.Equal(t, 2, c.Depth())

	assert.True(t, root.Less(a))
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, c.Less(hbr.FacePath{Top: 3}))
	assert.Equal(t, 0, b.Compare(hbr.FacePath{Top: 2, Children: []int{1, 0}}))
}
