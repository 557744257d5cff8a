package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cmap/builder"
	"github.com/katalvlaran/cmap/core"
)

// ExampleBuildMap builds a 2×2 quad mesh with one attribute per face.
func ExampleBuildMap() {
	m, err := builder.BuildMap(
		[]core.MapOption{core.WithAttribute(2, core.AttributeKind{Name: "face"})},
		[]builder.BuilderOption{builder.WithCellAttributes(2), builder.WithValueFn(builder.LabelValueFn("q"))},
		builder.Grid(2, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := m.CellCount(0)
	e, _ := m.CellCount(1)
	f, _ := m.CellCount(2)
	fmt.Println("darts:", m.DartCount(), "vertices:", v, "edges:", e, "faces:", f)
	fmt.Println("last face:", m.AttributeValue(2, m.Attribute(core.Dart(m.DartCount()-1), 2)))

	// Output:
	// darts: 16 vertices: 9 edges: 12 faces: 4
	// last face: q2:D
}
