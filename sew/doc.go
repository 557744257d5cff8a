// Package sew performs topological sews and unsews on a core.Map and keeps
// cell attributes consistent through package attrib.
//
// What:
//
//   - Sewable(m, i, d1, d2): whether the i-sew of d1 onto d2 is possible.
//   - Sew(m, i, d1, d2): groups attributes of every dart pair of the sew
//     orbit, then links them. After the call beta_i(d1) == d2.
//   - Unsew(m, i, d): unlinks every pair of the orbit of d, degroups the cells
//     that came apart and runs split detection over the modified darts.
//   - Link / Unlink: single-pair variants. Link propagates attributes dart by
//     dart; Unlink leaves attributes alone.
//
// Sew orbit:
//
//	An i-sew pairs darts along the betas beta_k with |k - i| ≥ 2 (k ≥ 1).
//	For i ≥ 2, beta_1 on one side pairs with beta_0 on the other, since
//	sewn darts run in opposite directions. For i = 1, each beta_k (k ≥ 3)
//	step swaps the roles of the two sides. A 0-sew of d1 onto d2 is the
//	1-sew of d2 onto d1, grouped as a beta_0 change.
//
// Errors:
//
//   - ErrNilMap       the map pointer is nil
//   - ErrNotSewable   the two orbits differ, overlap or are not free
//   - ErrAlreadyFree  Unsew/Unlink on a free beta
//   - core and attrib sentinels from the underlying passes
//
// Complexity:
//
//   - Sewable: O(|orbit|·dim)
//   - Sew, Unsew: O(|orbit|·dim + touched cells)
package sew
