// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) and the face emission helper.
package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// TestConfigDefaults checks the deterministic defaults and last-wins order.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultScale, cfg.scale)
	assert.Equal(t, r3.Vec{}, cfg.origin)
	assert.False(t, cfg.planarUV)
	assert.False(t, cfg.hasCrease)

	cfg = newBuilderConfig(WithScale(3), WithScale(0.5), WithCreaseAll(0))
	assert.Equal(t, 0.5, cfg.scale)
	assert.True(t, cfg.hasCrease, "a zero crease is still applied")
	assert.Equal(t, r3.Vec{X: 0.5, Y: 1}, cfg.place(r3.Vec{X: 1, Y: 2}))
}

// TestUVFor pads and truncates to the channel width.
func TestUVFor(t *testing.T) {
	t.Parallel()

	m := hbr.NewMesh()
	v := m.NewVertex(r3.Vec{X: 0.25, Y: 0.75, Z: 9})
	cfg := newBuilderConfig()
	assert.Equal(t, []float32{}, cfg.uvFor(v, 0))
	assert.Equal(t, []float32{0.25}, cfg.uvFor(v, 1))
	assert.Equal(t, []float32{0.25, 0.75, 0, 0}, cfg.uvFor(v, 4))
}

// TestEmitFaces_Rejected surfaces both the builder and the mesh sentinel.
func TestEmitFaces_Rejected(t *testing.T) {
	t.Parallel()

	m := hbr.NewMesh()
	verts := addVertices(m, newBuilderConfig(), []r3.Vec{{}, {X: 1}, {Y: 1}})
	_, err := emitFaces(m, newBuilderConfig(), "Test", verts, [][]int{{0, 1, 2}, {0, 1, 2}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConstructFailed))
	assert.True(t, errors.Is(err, hbr.ErrNonManifoldEdge))
	assert.Equal(t, 1, m.FaceCount())
}

// TestValidateMin wraps ErrTooFewVertices with the method context.
func TestValidateMin(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateMin(MethodQuadGrid, "rows", 1, MinGridDim))
	err := validateMin(MethodQuadGrid, "rows", 0, MinGridDim)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
	assert.Equal(t, "QuadGrid: rows=0 < min=1: builder: parameter too small", err.Error())
}
