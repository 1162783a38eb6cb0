package flownet

import (
	"context"
	"fmt"
	"math"
)

// MaxFlow computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths) and returns
// the total flow pushed.
//
// The residual matrix is mutated in place: after MaxFlow returns, Capacity
// reports remaining capacities and UsedEdges reports carried flow. Calling
// MaxFlow again without Reset continues on the saturated residual and
// pushes no further flow.
//
// Contracts:
//   - BFS visits neighbors in edge-insertion order and stops the moment
//     sink is first discovered, so augmenting paths are deterministic for
//     a fixed AddEdge sequence.
//   - The invariant res[u][v] + res[v][u] == reg[u][v] + reg[v][u] holds
//     for every pair at every step.
//
// Errors: ErrNodeOutOfRange, ErrSourceIsSink, and ctx.Err() when canceled
// mid-search (the network is left in a valid partially-augmented state).
//
// Complexity: O(V · E²) time, O(V) extra memory per run.
func (nw *Network) MaxFlow(ctx context.Context, source, sink int, opts ...Option) (int64, error) {
	// 1) Validate endpoints.
	if err := nw.checkNode(source); err != nil {
		return 0, err
	}
	if err := nw.checkNode(sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, fmt.Errorf("flownet: MaxFlow(%d,%d): %w", source, sink, ErrSourceIsSink)
	}
	o := applyOptions(opts)

	var (
		total  int64
		parent = make([]int, nw.n)
		path   []int
	)

	// 2) Repeatedly hunt for shortest augmenting paths until none remain.
	for {
		found, err := nw.bfsAugmentingPath(ctx, source, sink, parent)
		if err != nil {
			return total, err
		}
		if !found {
			break
		}

		// 3) Bottleneck: minimum residual along the predecessor chain.
		var (
			bottleneck = int64(math.MaxInt64)
			u, v       int
		)
		for v = sink; v != source; v = parent[v] {
			u = parent[v]
			if c := nw.res[nw.at(u, v)]; c < bottleneck {
				bottleneck = c
			}
		}

		// 4) Push: drain forward arcs, credit reverse arcs.
		for v = sink; v != source; v = parent[v] {
			u = parent[v]
			nw.res[nw.at(u, v)] -= bottleneck
			nw.res[nw.at(v, u)] += bottleneck
		}
		total += bottleneck

		if o.onAugment != nil {
			path = appendPath(path[:0], parent, source, sink)
			o.onAugment(path, bottleneck)
		}
	}

	return total, nil
}

// bfsAugmentingPath searches for the shortest augmenting path from source
// to sink over arcs with strictly positive residual capacity, filling
// parent with each reached node's predecessor. It reports whether sink was
// reached, returning the moment sink is first discovered.
func (nw *Network) bfsAugmentingPath(ctx context.Context, source, sink int, parent []int) (bool, error) {
	var (
		i, u, v int
		queue   = make([]int, 0, nw.n)
	)
	for i = range parent {
		parent[i] = -1
	}
	parent[source] = source

	queue = append(queue, source)
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		u = queue[0]
		queue = queue[1:]
		for _, v = range nw.adj[u] {
			if parent[v] != -1 || nw.res[nw.at(u, v)] <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				return true, nil
			}
			queue = append(queue, v)
		}
	}
	return false, nil
}

// appendPath rebuilds the source→sink path from the predecessor array into
// dst (reversing the sink→source walk) and returns the extended slice.
func appendPath(dst []int, parent []int, source, sink int) []int {
	for v := sink; ; v = parent[v] {
		dst = append(dst, v)
		if v == source {
			break
		}
	}
	// reverse in place to read source→sink
	for i, j := 0, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}
