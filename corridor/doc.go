// Package corridor models a wildlife corridor network: habitat patches at
// 2D coordinates, connected by movement corridors whose capacity degrades
// with distance, solved for maximum animal movement between a source and a
// target reserve by reduction to max flow.
//
// # Model
//
// Habitats are integer indices 0..N-1 with immutable (x,y) coordinates in
// kilometers. Building the network derives, for every unordered habitat
// pair within a maximum feasible distance D, an integer corridor capacity:
//
//	capacity = max(1, ⌊100 · (1 − d/D)²⌋)   for d ≤ D
//
// so capacity falls quadratically with distance and any feasible corridor
// supports at least one unit. Pairs further apart than D get no corridor.
//
// # Solving
//
// Solve lowers the corridor map onto a flownet.Network (one undirected
// corridor = two directed arcs of equal capacity, inserted in ascending
// pair order for deterministic augmentation) and runs Edmonds–Karp from
// source to target. The result carries the total movement capacity and the
// corridors that actually route flow, for "corridors to construct"
// reporting.
//
// # API
//
//	net, err := corridor.NewNetwork(6, 0, 5)
//	err = net.SetLocation(1, 20, 10)
//	err = net.Build(35)
//	res, err := net.Solve(ctx)         // res.MaxFlow, res.Corridors
//
// Random generates a reproducible synthetic network for experiments:
// habitats uniform in [0,region]², source pinned to (0,0) and target to
// (region,region).
//
// # Errors
//
//	ErrInvalidHabitatCount - NewNetwork with count ≤ 0.
//	ErrHabitatOutOfRange   - habitat index outside 0..N-1.
//	ErrNonPositiveDistance - Build with maxDistance ≤ 0.
//	ErrNonPositiveRegion   - Random with regionSize ≤ 0.
package corridor
