package attrib

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// checkOperands validates the map, the attribute dimension i in [0, d], the
// excluded beta j in [0, d+1] and every dart. method prefixes the error.
func checkOperands(method string, m *core.Map, i, j int, darts ...core.Dart) error {
	if m == nil {
		return fmt.Errorf("%s: %w", method, ErrNilMap)
	}
	if err := m.CheckDimension(i); err != nil {
		return fmt.Errorf("%s: attribute %w", method, err)
	}
	if j < 0 || j > NoExclusion(m) {
		return fmt.Errorf("%s: excluded beta %d: %w", method, j, core.ErrDimensionOutOfRange)
	}
	for _, d := range darts {
		if err := m.CheckDart(d); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}

// checkDarts validates a dart list.
func checkDarts(method string, m *core.Map, darts []core.Dart) error {
	for _, d := range darts {
		if err := m.CheckDart(d); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}

// callMerge runs the OnMerge hook of dimension i, if any.
func callMerge(m *core.Map, i, j int, survivor, absorbed core.Attr) {
	m.Logger().Debug("attrib: merge",
		"dim", i, "excluded", j, "survivor", survivor, "absorbed", absorbed)
	if kind, ok := m.Kind(i); ok && kind.OnMerge != nil {
		kind.OnMerge(m, i, survivor, absorbed)
	}
}

// callSplit runs the OnSplit hook of dimension i, if any.
func callSplit(m *core.Map, i, j int, original, created core.Attr) {
	m.Logger().Debug("attrib: split",
		"dim", i, "excluded", j, "original", original, "created", created)
	if kind, ok := m.Kind(i); ok && kind.OnSplit != nil {
		kind.OnSplit(m, i, original, created)
	}
}
