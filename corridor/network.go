package corridor

import (
	"context"
	"fmt"
	"math"

	"github.com/velkatern/biopath/flownet"
)

// Network is a wildlife corridor network under construction: habitat
// coordinates plus, once Build has run, the derived corridor capacities.
//
// Network is not safe for concurrent use.
type Network struct {
	locs   []Point
	source int
	target int

	// pairs holds feasible corridors in ascending (A,B) order; caps maps
	// each pair to its derived capacity. Rebuilt wholesale by Build.
	pairs []Pair
	caps  map[Pair]int64
}

// NewNetwork allocates a network of numHabitats patches with all
// coordinates at the origin, to be placed via SetLocation.
//
// Errors: ErrInvalidHabitatCount, ErrHabitatOutOfRange when source or
// target fall outside 0..numHabitats-1. A single-habitat network with
// source == target is valid and solves to zero flow.
func NewNetwork(numHabitats, source, target int) (*Network, error) {
	if numHabitats <= 0 {
		return nil, fmt.Errorf("corridor: NewNetwork(%d): %w", numHabitats, ErrInvalidHabitatCount)
	}
	n := &Network{
		locs:   make([]Point, numHabitats),
		source: source,
		target: target,
		caps:   make(map[Pair]int64),
	}
	if err := n.checkHabitat(source); err != nil {
		return nil, err
	}
	if err := n.checkHabitat(target); err != nil {
		return nil, err
	}
	return n, nil
}

// HabitatCount returns the number of habitat patches.
func (n *Network) HabitatCount() int { return len(n.locs) }

// Source returns the source habitat index.
func (n *Network) Source() int { return n.source }

// Target returns the target habitat index.
func (n *Network) Target() int { return n.target }

func (n *Network) checkHabitat(h int) error {
	if h < 0 || h >= len(n.locs) {
		return fmt.Errorf("corridor: habitat %d of %d: %w", h, len(n.locs), ErrHabitatOutOfRange)
	}
	return nil
}

// SetLocation places habitat h at (x, y).
func (n *Network) SetLocation(h int, x, y float64) error {
	if err := n.checkHabitat(h); err != nil {
		return err
	}
	n.locs[h] = Point{X: x, Y: y}
	return nil
}

// Location returns the coordinates of habitat h.
func (n *Network) Location(h int) (Point, error) {
	if err := n.checkHabitat(h); err != nil {
		return Point{}, err
	}
	return n.locs[h], nil
}

// Distance returns the Euclidean distance between two habitats.
func (n *Network) Distance(h1, h2 int) (float64, error) {
	if err := n.checkHabitat(h1); err != nil {
		return 0, err
	}
	if err := n.checkHabitat(h2); err != nil {
		return 0, err
	}
	dx := n.locs[h1].X - n.locs[h2].X
	dy := n.locs[h1].Y - n.locs[h2].Y
	return math.Sqrt(dx*dx + dy*dy), nil
}

// CapacityForDistance is the corridor capacity rule: 0 beyond maxDistance,
// otherwise max(1, ⌊MaxUnitCapacity · (1 − d/maxDistance)²⌋), modelling
// terrain difficulty growing quadratically with distance.
func CapacityForDistance(d, maxDistance float64) int64 {
	if d > maxDistance {
		return 0
	}
	normalized := 1.0 - d/maxDistance
	c := int64(MaxUnitCapacity * normalized * normalized)
	if c < 1 {
		return 1
	}
	return c
}

// Build derives the corridor map: every habitat pair within maxDistance
// gets a corridor with distance-scaled capacity. Any previous corridor map
// is discarded.
//
// Errors: ErrNonPositiveDistance.
// Complexity: O(N²).
func (n *Network) Build(maxDistance float64) error {
	if maxDistance <= 0 {
		return fmt.Errorf("corridor: Build(%g): %w", maxDistance, ErrNonPositiveDistance)
	}

	n.pairs = n.pairs[:0]
	n.caps = make(map[Pair]int64, len(n.locs))

	var (
		h1, h2 int
		d      float64
		c      int64
	)
	for h1 = 0; h1 < len(n.locs); h1++ {
		for h2 = h1 + 1; h2 < len(n.locs); h2++ {
			d, _ = n.Distance(h1, h2)
			if c = CapacityForDistance(d, maxDistance); c > 0 {
				p := Pair{A: h1, B: h2}
				n.pairs = append(n.pairs, p)
				n.caps[p] = c
			}
		}
	}
	return nil
}

// CorridorCount returns the number of feasible corridors found by Build.
func (n *Network) CorridorCount() int { return len(n.pairs) }

// CapacityBetween returns the built corridor capacity for an unordered
// habitat pair, reporting whether such a corridor exists.
func (n *Network) CapacityBetween(h1, h2 int) (int64, bool) {
	if h2 < h1 {
		h1, h2 = h2, h1
	}
	c, ok := n.caps[Pair{A: h1, B: h2}]
	return c, ok
}

// Solve computes the maximum movement capacity from source to target over
// the built corridors and the corridors that actually carry flow.
//
// The reduction is recreated from scratch on every call: each corridor
// becomes two directed arcs of equal capacity, inserted in ascending pair
// order so augmentation is deterministic. A network with source == target
// (including the single-habitat case) degenerates to zero flow.
//
// Complexity: O(V · E²) via Edmonds–Karp.
func (n *Network) Solve(ctx context.Context) (Result, error) {
	if n.source == n.target {
		return Result{}, nil
	}

	nw, err := flownet.NewNetwork(len(n.locs))
	if err != nil {
		return Result{}, err
	}
	for _, p := range n.pairs {
		c := n.caps[p]
		if err = nw.AddEdge(p.A, p.B, c); err != nil {
			return Result{}, err
		}
		if err = nw.AddEdge(p.B, p.A, c); err != nil {
			return Result{}, err
		}
	}

	maxFlow, err := nw.MaxFlow(ctx, n.source, n.target)
	if err != nil {
		return Result{}, err
	}

	used := nw.UsedEdges()
	res := Result{MaxFlow: maxFlow}
	if len(used) > 0 {
		res.Corridors = make([]Corridor, len(used))
		for i, e := range used {
			res.Corridors[i] = Corridor{Pair: Pair{A: e.U, B: e.V}, Flow: e.Flow}
		}
	}
	return res, nil
}
