// Package cmap is an in-memory engine for n-dimensional combinatorial maps
// whose cells carry attributes that stay consistent while the map is sewn,
// unsewn and linked.
//
// What is in the box?
//
//   - core/    - darts, betas, per-dimension attribute arenas, the 32-mark pool,
//     cell traversal, Validate and Fingerprint
//   - attrib/  - the attribute engine: Propagate, Group, Degroup, DetectSplits,
//     their *All variants and the dimension dispatch (Classify)
//   - sew/     - Sewable, Sew, Unsew, Link, Unlink driving attrib
//   - builder/ - deterministic fixtures: Edge, Polygon, Path, Grid, RandomSoup
//   - stress/  - seeded random sew/unsew runs with invariant checks
//   - cmd/cmapstress - CLI over stress
//
// The invariant every operation keeps: for each enabled dimension i, all darts
// of an i-cell hold the same i-attribute (or all hold none), and each
// attribute's holder count equals the number of darts pointing at it.
//
// Quick ASCII example:
//
//	    a2        b1
//	   ╱  ╲  2   ╱  ╲
//	  a0──a1 ═══ b0──b2
//
// Two triangles 2-sewn along a1/b0: their two shared vertices merge their
// 0-attributes, the shared edge merges its 1-attribute; unsewing gives each
// side a fresh copy again.
//
//	go get github.com/katalvlaran/cmap
package cmap
