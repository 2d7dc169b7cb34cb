package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuruc/OpenSubdiv/bfs"
	"github.com/mkuruc/OpenSubdiv/builder"
	"github.com/mkuruc/OpenSubdiv/hbr"
)

func notSharp(e *hbr.HalfEdge) bool { return !e.IsSharp(false) }

func TestComponents_Errors(t *testing.T) {
	_, err := bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrMeshNil)

	m, _ := grid(t)
	_, err = bfs.Components(m, bfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestComponents_DisjointShells(t *testing.T) {
	m, err := builder.BuildMesh(nil, nil,
		builder.Cube(),
		builder.Tetrahedron(),
	)
	require.NoError(t, err)

	comps, err := bfs.Components(m)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 6)
	assert.Len(t, comps[1], 4)
}

// TestComponents_CreasePatches splits a cube along fully creased edges: every
// face becomes its own patch.
func TestComponents_CreasePatches(t *testing.T) {
	m, err := builder.BuildMesh(nil, []builder.BuilderOption{builder.WithCreaseAll(hbr.Sharp)}, builder.Cube())
	require.NoError(t, err)

	comps, err := bfs.Components(m, bfs.WithFilterEdge(notSharp))
	require.NoError(t, err)
	assert.Len(t, comps, 6)

	// Smooth one edge again: its two faces merge.
	f := m.Faces()[0]
	require.NoError(t, f.Edge(0).SetSharpness(hbr.Smooth))
	comps, err = bfs.Components(m, bfs.WithFilterEdge(notSharp))
	require.NoError(t, err)
	require.Len(t, comps, 5)
	assert.Equal(t, []*hbr.Face{f, f.Edge(0).RightFace()}, comps[0])
}

func TestComponents_CoversEveryFaceOnce(t *testing.T) {
	m, faces := grid(t)
	require.NoError(t, m.DeleteFace(faces[1]))
	require.NoError(t, m.DeleteFace(faces[4]))
	require.NoError(t, m.DeleteFace(faces[7]))

	comps, err := bfs.Components(m)
	require.NoError(t, err)
	require.Len(t, comps, 2, "the middle column is gone")

	count := map[*hbr.Face]int{}
	for _, c := range comps {
		for _, f := range c {
			count[f]++
		}
	}
	assert.Len(t, count, 6)
	for f, n := range count {
		assert.Equal(t, 1, n, "%s", f)
	}
}
