// Package assembly reconstructs a sequence from string fragments by greedy
// traversal of their overlap graph — the classic shotgun-sequencing
// reduction to a Hamiltonian path. The alphabet is irrelevant to the
// algorithms; DNA strings over {A,C,G,T} are simply the motivating case.
//
// # Overlap Graph
//
// For every ordered fragment pair (i,j), the overlap is the length of the
// longest suffix of fragment i equal to a prefix of fragment j, with
// lengths below a configurable minimum recorded as 0 ("no usable edge").
// The full N×N matrix is computed once at construction in O(N²·L) and is
// immutable afterwards.
//
// # Heuristics
//
// Three greedy tour builders produce a complete fragment order; all share
// strict-greater comparisons over ascending indices, so ties always go to
// the lowest index and results are fully deterministic:
//
//   - Greedy: start at fragment 0, repeatedly take the unused fragment
//     with the largest overlap from the current one.
//
//   - NearestNeighbor: like Greedy, but starts at the fragment with the
//     largest total outgoing overlap.
//
//   - Savings: scores each candidate by immediate overlap plus the
//     candidate's own best outgoing overlap (one-step lookahead), starting
//     from the fragment with the best lookahead score.
//
// Every heuristic returns the assembled string, the order (always a full
// permutation, even on disconnected overlap graphs — zero-overlap joins
// are valid), and the total overlap collected along the order.
//
// # Evaluation
//
// Evaluate recomputes an order's total overlap and, when a reference
// sequence is supplied, a positional match percentage normalized by the
// longer of the two lengths. It is a crude diagnostic for synthetic data
// whose true origin order is known, not an alignment.
//
// # API
//
//	asm, err := assembly.New(fragments)                 // default min overlap 3
//	asm, err = assembly.New(fragments, assembly.WithMinOverlap(5))
//	res, err := asm.Greedy(ctx)                         // or NearestNeighbor / Savings
//	res, err = asm.Assemble(ctx, assembly.HeuristicSavings)
//	seq, err := asm.Reconstruct(res.Order)
//	ev, err := asm.Evaluate(res.Order, reference)
//
// GenerateFragments produces reproducible synthetic inputs: a seeded
// random sequence cut into fixed-length fragments at distinct positions,
// shuffled, returned together with the reference sequence.
//
// # Errors
//
//	ErrNegativeMinOverlap  - construction with a negative threshold.
//	ErrFragmentOutOfRange  - fragment index outside 0..N-1.
//	ErrOrderLength         - order length differs from the fragment count.
//	ErrOrderNotPermutation - order repeats or omits a fragment.
//	ErrUnknownHeuristic    - Assemble with an unrecognized heuristic name.
//	ErrInvalidLength / ErrTooManyFragments / ErrNegativeFragmentCount -
//	    malformed GenerateFragments arguments.
//	context.Canceled / context.DeadlineExceeded - ctx canceled mid-build.
package assembly
