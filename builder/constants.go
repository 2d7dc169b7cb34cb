package builder

import "github.com/mkuruc/OpenSubdiv/hbr"

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodQuadGrid is the canonical name for the QuadGrid constructor.
	MethodQuadGrid = "QuadGrid"
	// MethodTriangleStrip is the canonical name for the TriangleStrip constructor.
	MethodTriangleStrip = "TriangleStrip"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPolygonVertices is the smallest polygon a face can be.
const MinPolygonVertices = hbr.MinFaceVertices

// MinGridDim is the smallest allowed dimension (rows or cols) for a QuadGrid.
// A 1×1 grid is a single quad with four boundary edges.
const MinGridDim = 1

// MinStripTriangles is the smallest allowed TriangleStrip length.
const MinStripTriangles = 1
