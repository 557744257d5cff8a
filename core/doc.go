// Package core provides an n-dimensional combinatorial map: a set of darts
// linked by beta functions, with optional attributes attached to the cells of
// each dimension and a fixed pool of boolean marks used by traversals.
//
// The Map M = (D, beta_0 .. beta_n) supports:
//
//   - Flat dart arenas indexed by Dart (int32), NullDart for "free".
//   - beta_1 a partial permutation, beta_0 its inverse, beta_i (i ≥ 2) partial
//     involutions, edited only through BasicLink / BasicUnlink.
//   - One attribute arena per enabled dimension, addressed by Attr handles.
//     Every dart of an i-cell is meant to hold the same i-attribute handle;
//     keeping that true across sew and unsew is the job of package attrib.
//   - Holder counting: an attribute knows how many darts point at it and one
//     representative dart. At zero holders it becomes an orphan, released by
//     ReclaimOrphans or immediately with WithAutoReclaim.
//   - NbMarks (32) marks with O(1) NegateMark through a per-mark mask.
//
// Why a flat arena?
//
//   - Darts and attributes reference each other by index, so there is no
//     ownership cycle and Clone is a handful of slice copies.
//   - Traversals are deterministic: neighbors expand in a fixed generator
//     order and darts are scanned by index.
//
// Configuration Options (MapOption):
//
//	– WithDimension(d int)
//	    Intrinsic dimension, 1 ≤ d ≤ MaxDimension (default 2).
//
//	– WithAttribute(i int, kind AttributeKind)
//	    Enables i-attributes. kind carries the optional merge, split and clone
//	    hooks; without a kind the dimension is disabled.
//
//	– WithLogger(*slog.Logger)
//	    Diagnostics sink shared with attrib and sew (default: discard).
//
//	– WithChecks()
//	    Runs O(n) postcondition checks inside attribute passes; a failure
//	    panics with an error wrapping ErrInvariant.
//
//	– WithAutoReclaim()
//	    Releases orphan attributes as soon as they lose their last dart.
//
// Core Methods:
//
//	// Darts and betas
//	CreateDart() Dart                        // O(dim)
//	BasicLink(i, d1, d2) error               // O(1)
//	BasicUnlink(i, d) (Dart, error)          // O(1)
//	Beta(d, i) Dart, OtherExtremity(d) Dart  // O(1), O(dim)
//
//	// Attributes
//	CreateAttribute(i, v) (Attr, error)      // O(1) amortized
//	CopyAttribute(i, a) (Attr, error)        // O(1) + Clone
//	SetDartAttribute(d, i, a)                // O(1)
//	SetCellAttribute(d, i, a) error          // O(|cell|)
//	ReclaimOrphans(i) int                    // O(#attributes)
//
//	// Marks and cells
//	NewMark() (int, error), FreeMark(mark), WithMark(fn) error
//	MarkCell(d, i, mark, visit), UnmarkCell(d, i, mark)
//	ForEachDartOfCell(d, i, visit) error, BelongToSameCell(d1, d2, i)
//
//	// Whole map
//	Validate(m) error, Fingerprint(m) [32]byte, Clone() *Map, Clear()
//
// Errors:
//
//	ErrNullDart, ErrDartNotFound, ErrDimensionOutOfRange,
//	ErrAttributeDisabled, ErrAttrNotFound, ErrNoFreeMark, ErrNotFree,
//	ErrOptionViolation, ErrInvalidMap, ErrInvariant.
//
// Concurrency:
//
//	A Map is single-threaded. Use one Map per goroutine, or Clone.
package core
