package assembly

import (
	"context"
	"strings"
)

// scoreFunc rates extending the order from fragment cur to candidate j.
// Scores are always ≥ 0, so initializing the running best to -1 makes the
// first unused candidate admissible even at score 0.
type scoreFunc func(cur, j int) int

// buildOrder runs the shared greedy loop: starting from start, repeatedly
// append the unused fragment with the maximum score (ascending scan,
// strict >, ties to the lowest index), extending the assembled string by
// the part beyond the recorded overlap at each join.
//
// The incremental construction here and Reconstruct are definitionally
// identical; tests hold them together.
func (a *Assembler) buildOrder(ctx context.Context, start int, score scoreFunc) (Result, error) {
	if a.n == 0 {
		return Result{}, nil
	}

	var (
		used      = make([]bool, a.n)
		order     = make([]int, 0, a.n)
		total     int
		current   = start
		assembled strings.Builder
	)
	used[current] = true
	order = append(order, current)
	assembled.WriteString(a.fragments[current])

	for step := 1; step < a.n; step++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		var (
			bestNext  = -1
			bestScore = -1
			j         int
		)
		for j = 0; j < a.n; j++ {
			if used[j] {
				continue
			}
			if s := score(current, j); s > bestScore {
				bestScore = s
				bestNext = j
			}
		}

		used[bestNext] = true
		order = append(order, bestNext)
		ov := a.overlap[a.at(current, bestNext)]
		assembled.WriteString(a.fragments[bestNext][ov:])
		total += ov
		current = bestNext
	}

	return Result{Order: order, Sequence: assembled.String(), TotalOverlap: total}, nil
}

// bestOutgoing returns the largest overlap from fragment i to any other.
func (a *Assembler) bestOutgoing(i int) int {
	var best int
	for j := 0; j < a.n; j++ {
		if i != j && a.overlap[a.at(i, j)] > best {
			best = a.overlap[a.at(i, j)]
		}
	}
	return best
}

// totalOutgoing returns the sum of overlaps from fragment i to all others.
func (a *Assembler) totalOutgoing(i int) int {
	var total int
	for j := 0; j < a.n; j++ {
		total += a.overlap[a.at(i, j)]
	}
	return total
}
