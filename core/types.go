// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Dart, Attr, AttributeKind, Map, sentinel errors and NewMap.
//
// Errors:
//
//	ErrNullDart            - a NullDart was passed where a dart is required.
//	ErrDartNotFound        - the dart index is outside the dart arena.
//	ErrDimensionOutOfRange - a dimension is outside [0, Dimension()].
//	ErrAttributeDisabled   - the dimension carries no attribute kind.
//	ErrAttrNotFound        - the attribute handle is not live in its arena.
//	ErrNoFreeMark          - all NbMarks marks are reserved.
//	ErrNotFree             - a link was requested on a non-free beta.
//	ErrOptionViolation     - a MapOption received a meaningless value.
//	ErrInvalidMap          - Validate found a broken map invariant.
//	ErrInvariant           - an internal postcondition failed (panics only).

package core

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors for core map operations.
var (
	// ErrNullDart indicates that NullDart was supplied as an operand.
	ErrNullDart = errors.New("core: null dart")

	// ErrDartNotFound indicates a dart index outside the dart arena.
	ErrDartNotFound = errors.New("core: dart not found")

	// ErrDimensionOutOfRange indicates a dimension outside [0, Dimension()].
	ErrDimensionOutOfRange = errors.New("core: dimension out of range")

	// ErrAttributeDisabled indicates that no AttributeKind is registered for a dimension.
	ErrAttributeDisabled = errors.New("core: attributes disabled for dimension")

	// ErrAttrNotFound indicates an attribute handle that is not live.
	ErrAttrNotFound = errors.New("core: attribute not found")

	// ErrNoFreeMark indicates that every mark of the pool is reserved.
	ErrNoFreeMark = errors.New("core: no free mark")

	// ErrNotFree indicates a basic link on a beta that is already linked.
	ErrNotFree = errors.New("core: beta is not free")

	// ErrOptionViolation indicates an invalid MapOption.
	ErrOptionViolation = errors.New("core: invalid option supplied")

	// ErrInvalidMap is wrapped by every Validate failure.
	ErrInvalidMap = errors.New("core: invalid map")

	// ErrInvariant is wrapped by panics raised on corrupted internal state.
	ErrInvariant = errors.New("core: invariant violated")
)

// Dart is the index of a dart in the map's dart arena.
type Dart int32

// NullDart is the free (unlinked) beta value and the "no dart" handle.
const NullDart Dart = -1

// Attr is the index of an attribute in the arena of one dimension.
// A handle is only meaningful together with its dimension.
type Attr int32

// NullAttr is the "no attribute" handle.
const NullAttr Attr = -1

// Pool and dimension limits.
const (
	// NbMarks is the number of simultaneously reservable marks per map.
	NbMarks = 32

	// MaxDimension bounds the intrinsic dimension accepted by WithDimension.
	MaxDimension = 8

	// DefaultDimension is the dimension of a map built without WithDimension.
	DefaultDimension = 2
)

// MergeFunc combines the payload of absorbed into survivor. It is invoked when
// two i-cells carrying distinct attributes become one cell.
type MergeFunc func(m *Map, i int, survivor, absorbed Attr)

// SplitFunc reacts to one attribute becoming two: created is a fresh copy of
// original attached to the newly separated part of the cell.
type SplitFunc func(m *Map, i int, original, created Attr)

// AttributeKind describes the attributes of one dimension.
// A dimension without an AttributeKind has attributes disabled.
type AttributeKind struct {
	// Name is used in logs and error messages only.
	Name string

	// OnMerge, if non-nil, is called before the absorbed attribute loses its
	// darts. Without it the survivor is kept unchanged.
	OnMerge MergeFunc

	// OnSplit, if non-nil, is called after the created attribute was attached.
	OnSplit SplitFunc

	// Clone copies a payload for a new attribute. Without it the payload is
	// copied by assignment (shared for reference types).
	Clone func(v any) any
}

// attrRecord is one slot of an attribute arena.
type attrRecord struct {
	dart    Dart // representative dart, NullDart when unknown or orphaned
	holders int  // number of darts whose handle points here
	value   any  // user payload
	live    bool // false once reclaimed into the free list
}

// attrStore is the arena of one enabled dimension.
type attrStore struct {
	kind AttributeKind
	recs []attrRecord
	free []Attr
}

// Map is an n-dimensional combinatorial map.
//
// Darts live in flat arenas indexed by Dart: beta[d*(dim+1)+i] and
// attr[d*(dim+1)+i]. Attributes live in one attrStore per enabled dimension.
// A Map is not safe for concurrent use; every operation runs to completion
// before the next one starts.
type Map struct {
	dim int

	// Dart arenas.
	beta  []Dart
	attr  []Attr
	marks []uint32

	// Attribute arenas, stores[i] == nil when i-attributes are disabled.
	stores []*attrStore

	// Mark pool.
	reserved uint32       // bit k set: mark k is in use
	mask     uint32       // bit k set: mark k is negated
	marked   [NbMarks]int // logical number of darts marked with mark k

	logger      *slog.Logger
	checks      bool // run O(n) postcondition checks
	autoReclaim bool // release attributes as soon as they lose their last dart
}

// NewMap creates an empty Map configured by opts.
// By default the map is 2-dimensional with every attribute dimension disabled.
//
// Errors:
//   - ErrOptionViolation if an option was invalid (wrapped with details).
//
// Complexity: O(len(opts) + dim).
func NewMap(opts ...MapOption) (*Map, error) {
	cfg := defaultMapConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for i := range cfg.kinds {
		if i > cfg.dim {
			return nil, errorf(ErrOptionViolation, "WithAttribute(%d) exceeds dimension %d", i, cfg.dim)
		}
	}

	m := &Map{
		dim:         cfg.dim,
		stores:      make([]*attrStore, cfg.dim+1),
		logger:      cfg.logger,
		checks:      cfg.checks,
		autoReclaim: cfg.autoReclaim,
	}
	for i, kind := range cfg.kinds {
		m.stores[i] = &attrStore{kind: kind}
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return m, nil
}
