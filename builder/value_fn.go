// Package builder provides payload generators for attributes seeded by
// WithCellAttributes.

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces the payload of a seeded attribute of dimension i. cell is
// the running index of the attribute among the seeded i-attributes (0, 1, ...).
// It must be deterministic for a given RNG seed; rng may be nil.
type ValueFn func(i, cell int, rng *rand.Rand) any

// DefaultValueFn returns the cell index itself.
// Complexity: O(1). Never panics.
func DefaultValueFn(_ int, cell int, _ *rand.Rand) any {
	return cell
}

// ConstantValueFn returns a ValueFn that always yields v.
// Complexity: O(1) time, O(1) space.
func ConstantValueFn(v any) ValueFn {
	return func(int, int, *rand.Rand) any {
		return v
	}
}

// LabelValueFn returns a ValueFn yielding "<prefix><i>:<column>" where column
// is the Excel-style name of the cell index ("A", ..., "Z", "AA", ...).
// Complexity: O(log cell).
func LabelValueFn(prefix string) ValueFn {
	return func(i, cell int, _ *rand.Rand) any {
		return fmt.Sprintf("%s%d:%s", prefix, i, excelColumn(cell))
	}
}

// UniformValueFn returns a ValueFn sampling a float64 uniformly in [min, max).
// Panics if max < min. With a nil rng it yields min.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(min, max float64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(_ int, _ int, rng *rand.Rand) any {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// excelColumn renders idx ≥ 0 as an Excel-style column name: 0→"A", 25→"Z", 26→"AA".
func excelColumn(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 { // 26 alphabet size
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
