// Package builder provides deterministic “functional‐options”‐style fixture
// constructors for combinatorial maps. Tests, examples and the stress driver
// use it to get maps of a known shape with attributes already attached.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMap(mopts, bopts, cons...): creates a core.Map, resolves options,
//     runs constructors in order, seeds the remaining cells.
//   - Constructors (each adds darts without touching existing ones):
//     – Edge():           two darts linked by beta_2.
//     – Polygon(n):       a closed beta_1 cycle of n darts.
//     – Path(n):          an open beta_1 chain of n darts.
//     – Grid(rows, cols): quads glued with sew.Sew, attributes grouped on the way.
//     – RandomSoup(n):    random polygons and edges spending exactly n darts.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithValueFn, WithCellAttributes.
//   - Payload generators (ValueFn implementations):
//     – DefaultValueFn:  the running cell index.
//     – ConstantValueFn: a fixed payload.
//     – LabelValueFn:    "<prefix><dim>:<column>" labels ("f2:A", "f2:B", ...).
//     – UniformValueFn:  uniform float64 in [min,max).
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical maps (Fingerprint equal).
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewDarts, ErrNeedRandSource,
//     ErrUnsupportedDimension, ErrConstructFailed) wrapped with the method name.
//   - Every built map satisfies core.Validate.
package builder
