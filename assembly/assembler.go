package assembly

import (
	"context"
	"fmt"
)

// Assembler holds an immutable fragment set and its precomputed overlap
// graph. Construct once, run any number of heuristics against it.
//
// Assembler is safe for concurrent readers once built.
type Assembler struct {
	fragments  []string
	n          int
	minOverlap int
	overlap    []int // row-major n×n, diagonal always 0
}

// New copies fragments and precomputes the full overlap matrix.
//
// An empty fragment list is a valid degenerate input: heuristics return
// empty results. Empty fragment strings are allowed and simply form no
// edges.
//
// Errors: ErrNegativeMinOverlap.
// Complexity: O(N²·L) where L is the fragment length.
func New(fragments []string, opts ...Option) (*Assembler, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.minOverlap < 0 {
		return nil, fmt.Errorf("assembly: New(minOverlap=%d): %w", o.minOverlap, ErrNegativeMinOverlap)
	}

	n := len(fragments)
	a := &Assembler{
		fragments:  append([]string(nil), fragments...),
		n:          n,
		minOverlap: o.minOverlap,
		overlap:    make([]int, n*n),
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				a.overlap[a.at(i, j)] = overlapLength(a.fragments[i], a.fragments[j], a.minOverlap)
			}
		}
	}
	return a, nil
}

// at computes the flat row-major offset of (i,j). Callers validate bounds.
func (a *Assembler) at(i, j int) int { return i*a.n + j }

func (a *Assembler) checkFragment(i int) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("assembly: fragment %d of %d: %w", i, a.n, ErrFragmentOutOfRange)
	}
	return nil
}

// FragmentCount returns the number of fragments.
func (a *Assembler) FragmentCount() int { return a.n }

// MinOverlap returns the configured overlap threshold.
func (a *Assembler) MinOverlap() int { return a.minOverlap }

// Fragment returns the fragment at index i.
func (a *Assembler) Fragment(i int) (string, error) {
	if err := a.checkFragment(i); err != nil {
		return "", err
	}
	return a.fragments[i], nil
}

// Fragments returns a copy of the fragment list.
func (a *Assembler) Fragments() []string {
	return append([]string(nil), a.fragments...)
}

// Overlap returns the cached overlap of the ordered pair (i,j); the
// diagonal is always 0.
func (a *Assembler) Overlap(i, j int) (int, error) {
	if err := a.checkFragment(i); err != nil {
		return 0, err
	}
	if err := a.checkFragment(j); err != nil {
		return 0, err
	}
	return a.overlap[a.at(i, j)], nil
}

// EdgeCount returns the number of ordered pairs with a usable (positive)
// overlap, i.e. the edge count of the overlap graph.
func (a *Assembler) EdgeCount() int {
	var edges int
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if i != j && a.overlap[a.at(i, j)] > 0 {
				edges++
			}
		}
	}
	return edges
}

// Assemble dispatches to the named heuristic.
//
// Errors: ErrUnknownHeuristic, plus whatever the heuristic itself returns.
func (a *Assembler) Assemble(ctx context.Context, h Heuristic) (Result, error) {
	switch h {
	case HeuristicGreedy:
		return a.Greedy(ctx)
	case HeuristicNearestNeighbor:
		return a.NearestNeighbor(ctx)
	case HeuristicSavings:
		return a.Savings(ctx)
	default:
		return Result{}, fmt.Errorf("assembly: Assemble(%q): %w", h, ErrUnknownHeuristic)
	}
}
