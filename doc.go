// Package biopath bundles two classic algorithmic reductions over
// biological networks, each solved end to end: design wildlife corridors
// as a maximum-flow problem, and reassemble DNA fragments along an
// overlap graph.
//
// The module is organized under focused subpackages:
//
//	flownet/    — Edmonds-Karp max flow over dense capacity matrices
//	corridor/   — habitat networks: geometry, corridor capacities, solving
//	assembly/   — fragment overlap graphs and greedy assembly heuristics
//	experiment/ — timed size sweeps with CSV result sinks
//
// The biopath command (cmd/biopath) exposes both worked demos and the
// experiment sweeps:
//
//	biopath corridor     # six-habitat reserve network demo
//	biopath assembly     # five-fragment DNA assembly demo
//	biopath experiments  # timed sweeps, CSV results under data/
//
// Every solver is deterministic: adjacency is scanned in insertion order,
// heuristic ties resolve to the lowest fragment index, and random
// instances derive from explicit seeds. Running the same input twice
// yields identical results, which the experiment harness relies on.
package biopath
