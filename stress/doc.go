// Package stress drives long random sequences of sews and unsews over a
// random dart soup and checks, after every few steps, that the map is still
// valid: betas consistent, every cell attribute-uniform, holder counts exact
// and the mark pool clean.
//
// A run is fully described by a Profile and is deterministic for a given
// seed: two runs of the same profile end with the same core.Fingerprint.
//
// Profiles come from a YAML file (LoadProfile) with CMAP_* environment
// overrides:
//
//	seed: 7
//	steps: 2000
//	dimension: 3
//	darts: 96
//	sew_ratio: 0.6
//	attribute_dims: [0, 1, 2]
//	check_every: 10
//
// Errors: ErrInvalidProfile for bad profiles; a run stopped by a broken map
// returns an error wrapping core.ErrInvalidMap together with the partial
// Report; a cancelled context returns ctx.Err() wrapped.
package stress
