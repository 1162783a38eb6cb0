package assembly

import "context"

// Greedy assembles starting from fragment 0, always extending with the
// unused fragment that overlaps the current one the most (ties to the
// lowest index; a zero-overlap join is a valid extension).
//
// Contracts:
//   - Order is a permutation of 0..N-1 for any non-empty fragment set.
//   - Deterministic for a fixed fragment list and threshold.
//
// Complexity: O(N²).
func (a *Assembler) Greedy(ctx context.Context) (Result, error) {
	return a.buildOrder(ctx, 0, func(cur, j int) int {
		return a.overlap[a.at(cur, j)]
	})
}
