package corridor

import "errors"

// ErrInvalidHabitatCount indicates a non-positive habitat count.
var ErrInvalidHabitatCount = errors.New("corridor: habitat count must be > 0")

// ErrHabitatOutOfRange indicates a habitat index outside 0..N-1.
var ErrHabitatOutOfRange = errors.New("corridor: habitat index out of range")

// ErrNonPositiveDistance indicates a maximum corridor distance ≤ 0.
var ErrNonPositiveDistance = errors.New("corridor: max distance must be > 0")

// ErrNonPositiveRegion indicates a region size ≤ 0 for random generation.
var ErrNonPositiveRegion = errors.New("corridor: region size must be > 0")

// MaxUnitCapacity is the capacity of a zero-length corridor; the distance
// rule scales it down quadratically toward 1 at the feasibility limit.
const MaxUnitCapacity = 100

// Point is a habitat location in kilometers.
type Point struct {
	X, Y float64
}

// Pair is an unordered habitat pair, normalized so A < B.
type Pair struct {
	A, B int
}

// Corridor reports one habitat pair that routes flow in a solution.
type Corridor struct {
	Pair
	Flow int64
}

// Result is the outcome of solving a corridor network.
type Result struct {
	// MaxFlow is the total movement capacity between source and target.
	MaxFlow int64
	// Corridors lists, in ascending pair order, every corridor with
	// positive carried flow.
	Corridors []Corridor
}
