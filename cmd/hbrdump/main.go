// Command hbrdump builds a fixture mesh, refines its edges and prints
// topology and facevarying diagnostics.
//
//	hbrdump -shape grid -rows 4 -cols 4 -fvar 2,1 -perturb 0.25
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/mkuruc/OpenSubdiv/bfs"
	"github.com/mkuruc/OpenSubdiv/builder"
	"github.com/mkuruc/OpenSubdiv/hbr"
)

var (
	shape   = flag.String("shape", "grid", "polygon | grid | strip | tetrahedron | cube | octahedron")
	size    = flag.Int("n", 4, "polygon sides or strip triangles")
	rows    = flag.Int("rows", 3, "grid rows")
	cols    = flag.Int("cols", 3, "grid columns")
	fvar    = flag.String("fvar", "2", "comma separated facevarying channel widths")
	crease  = flag.Float64("crease", -1, "sharpness for every edge (negative leaves edges smooth)")
	perturb = flag.Float64("perturb", 0, "offset added to the first face's facevarying data")
	refine  = flag.Bool("subdivide", true, "create a midpoint child on every edge")
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	if err := run(); err != nil {
		klog.Errorf("hbrdump: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run() error {
	widths, err := parseWidths(*fvar)
	if err != nil {
		return err
	}
	cons, err := constructor(*shape)
	if err != nil {
		return err
	}

	mopts := []hbr.MeshOption{
		hbr.WithFVarWidths(widths...),
		hbr.WithSubdivision(hbr.MidpointSubdivision{}),
	}
	bopts := []builder.BuilderOption{builder.WithPlanarUV()}
	if *crease >= 0 {
		bopts = append(bopts, builder.WithCreaseAll(float32(*crease)))
	}
	m, err := builder.BuildMesh(mopts, bopts, cons)
	if err != nil {
		return err
	}

	if *perturb != 0 && m.TotalFVarWidth() > 0 {
		if err := perturbFirstFace(m, float32(*perturb)); err != nil {
			return err
		}
	}

	fmt.Printf("shape:          %s\n", *shape)
	fmt.Printf("vertices:       %d\n", m.VertexCount())
	fmt.Printf("faces:          %d\n", m.FaceCount())
	fmt.Printf("boundary edges: %d\n", len(m.BoundaryEdges()))

	res, err := bfs.BFS(m, m.Faces()[0])
	if err != nil {
		return err
	}
	depth := 0
	for _, d := range res.Depth {
		if d > depth {
			depth = d
		}
	}
	fmt.Printf("face diameter from %s: %d (%d reachable)\n", m.Faces()[0], depth, len(res.Order))

	for ch := 0; ch < m.FVarCount(); ch++ {
		seams, err := countSeams(m, ch)
		if err != nil {
			return err
		}
		fmt.Printf("fvar channel %d (width %d): %d infinitely sharp half-edges\n", ch, m.FVarWidth(ch), seams)
	}

	if *refine {
		n, err := m.SubdivideEdges()
		if err != nil {
			return err
		}
		fmt.Printf("edge children:  %d\n", n)
		fmt.Printf("vertices:       %d after refinement\n", m.VertexCount())
	}
	return nil
}

func constructor(name string) (builder.Constructor, error) {
	switch name {
	case "polygon":
		return builder.Polygon(*size), nil
	case "grid":
		return builder.QuadGrid(*rows, *cols), nil
	case "strip":
		return builder.TriangleStrip(*size), nil
	case "tetrahedron":
		return builder.PlatonicSolid(builder.SolidTetrahedron), nil
	case "cube":
		return builder.PlatonicSolid(builder.SolidCube), nil
	case "octahedron":
		return builder.PlatonicSolid(builder.SolidOctahedron), nil
	}
	return nil, errors.Errorf("unknown shape %q", name)
}

func parseWidths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || w < 0 {
			return nil, errors.Errorf("bad facevarying width %q", p)
		}
		widths[i] = w
	}
	return widths, nil
}

// perturbFirstFace shifts every channel value of the first face so each of
// its interior edges becomes a facevarying discontinuity.
func perturbFirstFace(m *hbr.Mesh, d float32) error {
	f := m.Faces()[0]
	for corner := 0; corner < f.NumVertices(); corner++ {
		data := f.FVarData(corner)
		for ch := 0; ch < m.FVarCount(); ch++ {
			start, width := m.FVarStart(ch), m.FVarWidth(ch)
			vals := make([]float32, width)
			for i := range vals {
				vals[i] = data[start+i] + d
			}
			if err := f.SetFVarData(corner, ch, vals); err != nil {
				return errors.Wrapf(err, "perturb %s corner %d", f, corner)
			}
		}
	}
	klog.V(1).Infof("perturbed %s by %g", f, d)
	return nil
}

func countSeams(m *hbr.Mesh, ch int) (int, error) {
	n := 0
	for _, f := range m.Faces() {
		for i := 0; i < f.NumVertices(); i++ {
			sharp, err := f.Edge(i).FVarInfiniteSharp(ch)
			if err != nil {
				return 0, err
			}
			if sharp {
				n++
			}
		}
	}
	return n, nil
}
