package assembly

import "errors"

// DefaultMinOverlap is the overlap threshold used when no option overrides
// it; suffix/prefix matches shorter than this are not edges.
const DefaultMinOverlap = 3

// ErrNegativeMinOverlap indicates a negative overlap threshold.
var ErrNegativeMinOverlap = errors.New("assembly: negative minimum overlap")

// ErrFragmentOutOfRange indicates a fragment index outside 0..N-1.
var ErrFragmentOutOfRange = errors.New("assembly: fragment index out of range")

// ErrOrderLength indicates an order whose length differs from the
// fragment count.
var ErrOrderLength = errors.New("assembly: order length mismatch")

// ErrOrderNotPermutation indicates an order that repeats or omits a
// fragment index.
var ErrOrderNotPermutation = errors.New("assembly: order is not a permutation")

// ErrUnknownHeuristic indicates an unrecognized heuristic name.
var ErrUnknownHeuristic = errors.New("assembly: unknown heuristic")

// ErrNegativeFragmentCount indicates a negative fragment count for
// generation.
var ErrNegativeFragmentCount = errors.New("assembly: fragment count must be ≥ 0")

// ErrInvalidLength indicates a fragment length outside 1..sequence length.
var ErrInvalidLength = errors.New("assembly: fragment length must be in 1..sequence length")

// ErrTooManyFragments indicates more requested fragments than distinct
// cut positions in the sequence.
var ErrTooManyFragments = errors.New("assembly: more fragments than distinct cut positions")

// Heuristic names an assembly strategy accepted by Assemble.
type Heuristic string

const (
	// HeuristicGreedy always extends with the largest immediate overlap.
	HeuristicGreedy Heuristic = "greedy"
	// HeuristicNearestNeighbor is Greedy started from the fragment with
	// the largest total outgoing overlap.
	HeuristicNearestNeighbor Heuristic = "nearest_neighbor"
	// HeuristicSavings adds a one-step lookahead bonus to each candidate.
	HeuristicSavings Heuristic = "savings"
)

// Heuristics returns all strategies in their canonical reporting order.
func Heuristics() []Heuristic {
	return []Heuristic{HeuristicGreedy, HeuristicNearestNeighbor, HeuristicSavings}
}

// Result is the outcome of one heuristic run.
type Result struct {
	// Order is a permutation of fragment indices.
	Order []int
	// Sequence is the assembled string for Order.
	Sequence string
	// TotalOverlap is the sum of overlaps along consecutive Order pairs.
	TotalOverlap int
}

// Evaluation scores an order after the fact.
type Evaluation struct {
	// TotalOverlap is the sum of overlaps along consecutive order pairs.
	TotalOverlap int
	// Accuracy is the positional match percentage against the reference,
	// normalized by the longer sequence; 0 when no reference was given.
	Accuracy float64
}

// Option configures an Assembler at construction.
type Option func(*options)

type options struct {
	minOverlap int
}

// WithMinOverlap overrides the minimum usable overlap length.
// Negative values are rejected by New.
func WithMinOverlap(k int) Option {
	return func(o *options) { o.minOverlap = k }
}

func defaultOptions() options {
	return options{minOverlap: DefaultMinOverlap}
}
