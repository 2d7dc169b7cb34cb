package builder_test

import (
	"fmt"

	"github.com/mkuruc/OpenSubdiv/builder"
	"github.com/mkuruc/OpenSubdiv/hbr"
)

// ExampleBuildMesh builds a UV-mapped quad sheet and counts its edges.
func ExampleBuildMesh() {
	m, err := builder.BuildMesh(
		[]hbr.MeshOption{hbr.WithFVarWidths(2), hbr.WithSubdivision(hbr.MidpointSubdivision{})},
		[]builder.BuilderOption{builder.WithPlanarUV()},
		builder.QuadGrid(2, 3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	children, _ := m.SubdivideEdges()
	fmt.Println("faces:", m.FaceCount())
	fmt.Println("boundary edges:", len(m.BoundaryEdges()))
	fmt.Println("edge children:", children)

	// Output:
	// faces: 6
	// boundary edges: 10
	// edge children: 17
}
