// Package attrib keeps per-cell attributes of a core.Map consistent while its
// darts are linked and unlinked.
//
// What:
//
//   - Propagate: dart-level update when two darts are about to be linked by
//     beta_j. Only the two darts (or their other extremities for vertices)
//     change; nothing cascades through the cells.
//   - Group: cell-level unification used by sew. The surviving attribute is
//     written over the whole cell of the losing side; the kind's OnMerge hook
//     combines payloads when both sides had an attribute.
//   - Degroup: cell-level separation used by unsew once the two darts no
//     longer share a cell. The far side receives a copy; OnSplit is called.
//   - DetectSplits: batch pass over the darts touched by an unsew. Every
//     attribute now spanning several disconnected cells keeps its identity on
//     the first component discovered and gives a copy to each other one.
//
// Dispatch:
//
//	Every operation takes the attribute dimension i and the excluded beta j
//	(the beta being modified; NoExclusion(m) when none). Classify resolves the
//	pair once into a Case:
//
//	  CaseVoid         i disabled        no-op
//	  CaseVertexBeta0  i == 0, j == 0    one extremity: dh1 vs other(dh2)
//	  CaseSameDim      i == j ≥ 1        no-op
//	  CaseEdgeBeta0    i == 1, j == 0    no-op (edges ignore beta_0 relinks)
//	  CaseVertexBeta1  i == 0, j == 1    one extremity: other(dh1) vs dh2
//	  CaseVertexHigh   i == 0, j ≥ 2     both extremities
//	  CaseGeneric      otherwise         dh1 vs dh2
//
// Why extremities:
//
//	A 0-attribute belongs to the vertex at the start of a dart. Linking
//	beta_1(dh1) = dh2 glues the end of dh1 to the start of dh2, and the end of
//	dh1 is the start of other(dh1). The vertex cases therefore compare the
//	darts that actually meet rather than dh1 and dh2 themselves.
//
// Errors:
//
//   - ErrNilMap            the map pointer is nil
//   - ErrSameCell          Degroup on two darts still in the same cell
//   - ErrMissingSecondary  vertex split detection after a beta_0/beta_1 unsew
//     without the second dart list
//   - ErrOptionViolation   invalid SplitOption
//   - core sentinels       bad darts or dimensions, exhausted mark pool
//
// Panics:
//
//	Only on a corrupted map: with core.WithChecks the split pass verifies that
//	its scratch mark covers the whole map before releasing it, and panics with
//	an error wrapping core.ErrInvariant otherwise.
//
// Complexity:
//
//   - Propagate: O(dim)
//   - Group, Degroup: O(|cell|) per dimension
//   - DetectSplits: O(sum of visited cells), twice (mark then restore)
package attrib
