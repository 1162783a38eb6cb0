package corridor

import (
	"fmt"
	"math/rand"
)

// Random generates a reproducible synthetic network of numHabitats patches
// placed uniformly in [0, regionSize]², with habitat 0 as the source pinned
// to (0,0) and habitat numHabitats-1 as the target pinned to
// (regionSize, regionSize) so the endpoints sit on opposite region corners.
//
// The same seed always yields the same placement. Build must still be
// called to derive corridors.
//
// Errors: ErrInvalidHabitatCount, ErrNonPositiveRegion.
func Random(numHabitats int, regionSize float64, seed int64) (*Network, error) {
	if regionSize <= 0 {
		return nil, fmt.Errorf("corridor: Random(region=%g): %w", regionSize, ErrNonPositiveRegion)
	}
	n, err := NewNetwork(numHabitats, 0, numHabitats-1)
	if err != nil {
		return nil, err
	}

	rnd := rand.New(rand.NewSource(seed))
	for h := 0; h < numHabitats; h++ {
		if err = n.SetLocation(h, rnd.Float64()*regionSize, rnd.Float64()*regionSize); err != nil {
			return nil, err
		}
	}

	// endpoints overwritten last, matching the generation contract
	if err = n.SetLocation(n.source, 0, 0); err != nil {
		return nil, err
	}
	if err = n.SetLocation(n.target, regionSize, regionSize); err != nil {
		return nil, err
	}
	return n, nil
}
