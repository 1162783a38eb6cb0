package assembly

import "context"

// NearestNeighbor assembles like Greedy but chooses its starting fragment
// first: the one with the largest total outgoing overlap (ascending scan,
// strict >, so ties and the all-zero case settle on the lowest index).
//
// Complexity: O(N²).
func (a *Assembler) NearestNeighbor(ctx context.Context) (Result, error) {
	if a.n == 0 {
		return Result{}, nil
	}

	var (
		start    int
		maxTotal int
		i, total int
	)
	for i = 0; i < a.n; i++ {
		if total = a.totalOutgoing(i); total > maxTotal {
			maxTotal = total
			start = i
		}
	}

	return a.buildOrder(ctx, start, func(cur, j int) int {
		return a.overlap[a.at(cur, j)]
	})
}
