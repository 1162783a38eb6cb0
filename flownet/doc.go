// Package flownet implements a maximum-flow engine over a dense residual
// capacity matrix with adjacency-list traversal. It is built for small and
// medium networks whose nodes are plain integer indices 0..N-1, where the
// whole capacity structure fits comfortably in an N×N matrix and the caller
// wants deterministic, reproducible augmentation order.
//
// The algorithm offered is:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case with integer capacities.
//
//   - Memory: O(V²) for the capacity matrix, O(V + E) for search state.
//
//   - Deterministic: BFS visits neighbors in edge-insertion order, so the
//     same sequence of AddEdge calls always produces the same augmenting
//     paths and the same residual state.
//
// # Network Model
//
// A Network holds two flat row-major int64 matrices: the live residual
// capacities (mutated by MaxFlow) and the capacities as registered (never
// mutated after AddEdge). Edges are directed; an undirected corridor is two
// AddEdge calls, one per direction. Registering any capacity between a pair
// for the first time records the two nodes in each other's adjacency list
// exactly once, and repeated AddEdge calls accumulate capacity.
//
// # API
//
// Construction and mutation:
//
//	nw, err := flownet.NewNetwork(n)
//	err = nw.AddEdge(u, v, cap)
//
// Solving and inspection:
//
//	flow, err := nw.MaxFlow(ctx, source, sink)
//	edges := nw.UsedEdges() // unordered pairs with positive carried flow
//	nw.Reset()              // restore pre-flow capacities
//
// MaxFlow accepts functional options; WithOnAugment registers an observer
// invoked once per augmentation with the path and its bottleneck.
//
// # Errors
//
//	ErrInvalidOrder     - node count ≤ 0 at construction.
//	ErrNodeOutOfRange   - a node index outside 0..N-1.
//	ErrNegativeCapacity - AddEdge called with cap < 0.
//	ErrSourceIsSink     - MaxFlow called with source == sink.
//	context.Canceled / context.DeadlineExceeded - ctx canceled mid-search.
package flownet
