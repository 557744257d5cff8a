// Package attrib: sentinel errors, dispatch cases and split options.

package attrib

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// Sentinel errors for attribute operations.
var (
	// ErrNilMap is returned when a nil *core.Map is passed.
	ErrNilMap = errors.New("attrib: map is nil")

	// ErrSameCell is returned by Degroup when both darts still lie in one cell.
	ErrSameCell = errors.New("attrib: darts belong to the same cell")

	// ErrMissingSecondary is returned by DetectSplits for i == 0 and j in {0, 1}
	// when WithSecondary was not supplied.
	ErrMissingSecondary = errors.New("attrib: secondary dart list required")

	// ErrOptionViolation is returned when an invalid SplitOption is supplied.
	ErrOptionViolation = errors.New("attrib: invalid option supplied")
)

// Case is the resolved behavior of an operation for one (i, j) pair.
type Case uint8

// Dispatch cases, see the package documentation.
const (
	CaseGeneric Case = iota
	CaseVertexHigh
	CaseVertexBeta0
	CaseVertexBeta1
	CaseSameDim
	CaseEdgeBeta0
	CaseVoid
)

var caseNames = [...]string{
	CaseGeneric:     "generic",
	CaseVertexHigh:  "vertex/beta_j≥2",
	CaseVertexBeta0: "vertex/beta_0",
	CaseVertexBeta1: "vertex/beta_1",
	CaseSameDim:     "same-dimension",
	CaseEdgeBeta0:   "edge/beta_0",
	CaseVoid:        "void",
}

// String returns a short name for logs.
func (c Case) String() string {
	if int(c) < len(caseNames) {
		return caseNames[c]
	}
	return fmt.Sprintf("Case(%d)", uint8(c))
}

// IsNoop reports whether operations of this case never touch the map.
func (c Case) IsNoop() bool {
	return c == CaseSameDim || c == CaseEdgeBeta0 || c == CaseVoid
}

// NoExclusion returns the j value meaning "no beta excluded" for m: d+1.
func NoExclusion(m *core.Map) int { return m.Dimension() + 1 }

// Classify resolves the (i, j) pair on m. It assumes i and j are in range.
// A disabled dimension is void whatever j is; (0, 0) is the beta_0 vertex
// case, not a same-dimension no-op, because beta_0 glues vertices.
func Classify(m *core.Map, i, j int) Case {
	switch {
	case !m.AttributeEnabled(i):
		return CaseVoid
	case i == 0 && j == 0:
		return CaseVertexBeta0
	case i == j:
		return CaseSameDim
	case i == 1 && j == 0:
		return CaseEdgeBeta0
	case i == 0 && j == 1:
		return CaseVertexBeta1
	case i == 0:
		return CaseVertexHigh
	default:
		return CaseGeneric
	}
}

// SplitOption configures DetectSplits.
// If an option is invalid it is recorded and surfaced as ErrOptionViolation.
type SplitOption func(*splitConfig)

// splitConfig holds DetectSplits parameters.
type splitConfig struct {
	secondary    []core.Dart
	hasSecondary bool
	callerMark   int

	// internal error recorded during option parsing
	err error
}

func defaultSplitConfig() splitConfig {
	return splitConfig{callerMark: -1}
}

// WithSecondary supplies the second list of modified darts. After an unsew
// along beta_0 or beta_1 the first list holds darts whose beta_0 changed and
// this one darts whose beta_1 changed. It is required for vertex attributes
// in that situation.
func WithSecondary(darts []core.Dart) SplitOption {
	return func(c *splitConfig) {
		c.secondary = darts
		c.hasSecondary = true
	}
}

// WithCallerMark names a mark reserved by the caller that flags the modified
// darts. DetectSplits unmarks it on every listed dart during cleanup.
func WithCallerMark(mark int) SplitOption {
	return func(c *splitConfig) {
		if mark < 0 || mark >= core.NbMarks {
			c.err = fmt.Errorf("%w: caller mark %d not in [0,%d)", ErrOptionViolation, mark, core.NbMarks)
			return
		}
		c.callerMark = mark
	}
}

// SplitReport describes the outcome of one DetectSplits pass.
type SplitReport struct {
	// Dim is the attribute dimension i, Excluded the beta j.
	Dim, Excluded int

	// Case is the resolved dispatch case.
	Case Case

	// Created lists the new attributes in creation order. Origin[k] is the
	// attribute Created[k] was copied from.
	Created []core.Attr
	Origin  []core.Attr
}

// Splits returns the number of attributes created by the pass.
func (r SplitReport) Splits() int { return len(r.Created) }
