package sew_test

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
	"github.com/katalvlaran/cmap/sew"
)

// ExampleSew glues two triangles along one edge and takes them apart again.
func ExampleSew() {
	m, _ := core.NewMap(core.WithAutoReclaim(), core.WithAttribute(0, core.AttributeKind{Name: "vertex"}))
	tri := func() core.Dart {
		ds := m.CreateDarts(3)
		for k := range ds {
			_ = m.BasicLink(1, ds[k], ds[(k+1)%3])
		}
		for _, d := range ds {
			a, _ := m.CreateAttribute(0, nil)
			_ = m.SetCellAttribute(d, 0, a)
		}
		return ds[0]
	}
	a, b := tri(), tri()

	_ = sew.Sew(m, 2, a, b)
	v, _ := m.CellCount(0)
	fmt.Println("vertices:", v, "attributes:", m.AttributeCount(0))

	_ = sew.Unsew(m, 2, a)
	v, _ = m.CellCount(0)
	fmt.Println("vertices:", v, "valid:", core.Validate(m) == nil)

	// Output:
	// vertices: 4 attributes: 4
	// vertices: 6 valid: true
}
