package assembly

import "context"

// Savings assembles with a one-step lookahead: each fragment carries a
// savings score (its best possible outgoing overlap), and candidates are
// rated by immediate overlap plus their own savings, biasing selection
// toward fragments that remain good continuations. The tour starts at the
// first fragment with the globally maximal savings score.
//
// Complexity: O(N²).
func (a *Assembler) Savings(ctx context.Context) (Result, error) {
	if a.n == 0 {
		return Result{}, nil
	}

	savings := make([]int, a.n)
	var i, start int
	for i = 0; i < a.n; i++ {
		savings[i] = a.bestOutgoing(i)
	}
	// first maximum wins, mirroring the ascending-scan tie-break
	for i = 1; i < a.n; i++ {
		if savings[i] > savings[start] {
			start = i
		}
	}

	return a.buildOrder(ctx, start, func(cur, j int) int {
		return a.overlap[a.at(cur, j)] + savings[j]
	})
}
