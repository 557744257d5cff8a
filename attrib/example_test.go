package attrib_test

import (
	"fmt"

	"github.com/katalvlaran/cmap/attrib"
	"github.com/katalvlaran/cmap/core"
)

// ExampleDetectSplits unsews a two-dart edge carrying one edge attribute and
// lets the split pass give each side its own copy.
func ExampleDetectSplits() {
	m, _ := core.NewMap(core.WithAttribute(1, core.AttributeKind{
		Name: "edge",
		OnSplit: func(m *core.Map, i int, original, created core.Attr) {
			fmt.Printf("split %v -> %v\n", m.AttributeValue(i, original), m.AttributeValue(i, created))
		},
	}))
	x, y := m.CreateDart(), m.CreateDart()
	_ = m.BasicLink(2, x, y)
	e, _ := m.CreateAttribute(1, "road")
	_ = m.SetCellAttribute(x, 1, e)

	_, _ = m.BasicUnlink(2, x)
	rep, _ := attrib.DetectSplits(m, 1, 2, []core.Dart{x, y})

	fmt.Println("splits:", rep.Splits(), "valid:", core.Validate(m) == nil)

	// Output:
	// split road -> road
	// splits: 1 valid: true
}
