// File: options.go
// Role: Functional options resolved once by NewMap.
// Policy:
//   - Options never touch a live Map; they fill mapConfig.
//   - Invalid values are recorded and surfaced by NewMap as ErrOptionViolation,
//     except nil callbacks and loggers which are programmer errors and panic.

package core

import (
	"fmt"
	"log/slog"
)

// MapOption configures a Map before creation.
type MapOption func(*mapConfig)

// mapConfig collects option values; NewMap copies them into the Map.
type mapConfig struct {
	dim         int
	kinds       map[int]AttributeKind
	logger      *slog.Logger
	checks      bool
	autoReclaim bool

	// internal error recorded during option parsing
	err error
}

// defaultMapConfig returns the deterministic defaults: dimension 2, no
// attributes, discard logger, no postcondition checks, manual reclamation.
func defaultMapConfig() mapConfig {
	return mapConfig{
		dim:   DefaultDimension,
		kinds: make(map[int]AttributeKind),
	}
}

// WithDimension sets the intrinsic dimension d (1 ≤ d ≤ MaxDimension).
// Darts get d+1 beta slots: beta_0 .. beta_d.
func WithDimension(d int) MapOption {
	return func(c *mapConfig) {
		if d < 1 || d > MaxDimension {
			c.err = errorf(ErrOptionViolation, "dimension %d not in [1,%d]", d, MaxDimension)
			return
		}
		c.dim = d
	}
}

// WithAttribute enables i-attributes described by kind.
// Registering the same dimension twice keeps the last kind.
func WithAttribute(i int, kind AttributeKind) MapOption {
	return func(c *mapConfig) {
		if i < 0 {
			c.err = errorf(ErrOptionViolation, "attribute dimension %d is negative", i)
			return
		}
		c.kinds[i] = kind
	}
}

// WithLogger routes map, attribute and sew diagnostics to logger.
// Panics on nil.
func WithLogger(logger *slog.Logger) MapOption {
	if logger == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *mapConfig) { c.logger = logger }
}

// WithChecks enables O(n) postcondition checks inside attribute passes
// (for example the whole-map-marked check after split detection).
// A failed check panics with an error wrapping ErrInvariant.
func WithChecks() MapOption {
	return func(c *mapConfig) { c.checks = true }
}

// WithAutoReclaim releases an attribute to its arena free list as soon as its
// last dart is repointed elsewhere. Without it orphans stay live until
// ReclaimOrphans is called.
func WithAutoReclaim() MapOption {
	return func(c *mapConfig) { c.autoReclaim = true }
}

// errorf wraps sentinel with a formatted detail message.
func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
