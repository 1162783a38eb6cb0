package flownet

import "fmt"

// Network is a capacitated flow network over nodes 0..N-1.
//
// Residual capacities live in a flat row-major N×N matrix, mutated in place
// by MaxFlow; the capacities as registered are kept in a second matrix that
// never changes after AddEdge, so carried flow can be derived afterwards.
// Adjacency lists record neighbors in edge-insertion order and bound every
// BFS; they are built once by AddEdge and never re-derived from the matrix.
//
// Network is not safe for concurrent use.
type Network struct {
	n   int
	res []int64 // residual capacities, row-major, mutated by MaxFlow
	reg []int64 // registered capacities, row-major, read-only after AddEdge
	adj [][]int // per-node neighbor indices in insertion order
}

// NewNetwork allocates a zero-capacity network on n nodes.
//
// Returns ErrInvalidOrder when n ≤ 0.
// Complexity: O(n²) time and memory.
func NewNetwork(n int) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("flownet: NewNetwork(%d): %w", n, ErrInvalidOrder)
	}

	return &Network{
		n:   n,
		res: make([]int64, n*n),
		reg: make([]int64, n*n),
		adj: make([][]int, n),
	}, nil
}

// Order returns the number of nodes.
func (nw *Network) Order() int { return nw.n }

// at computes the flat row-major offset of (u,v). Callers validate bounds.
func (nw *Network) at(u, v int) int { return u*nw.n + v }

// checkNode validates a single node index.
func (nw *Network) checkNode(u int) error {
	if u < 0 || u >= nw.n {
		return fmt.Errorf("flownet: node %d of %d: %w", u, nw.n, ErrNodeOutOfRange)
	}
	return nil
}

// AddEdge registers directed capacity c on the arc u→v.
//
// Contracts:
//   - The first registration between u and v in either direction appends
//     each node to the other's adjacency list exactly once; later calls
//     only accumulate capacity.
//   - The reverse arc v→u keeps its own independent capacity: callers
//     building an undirected corridor must AddEdge both directions.
//
// Errors: ErrNodeOutOfRange, ErrNegativeCapacity.
// Complexity: O(1).
func (nw *Network) AddEdge(u, v int, c int64) error {
	// 1) Validate endpoints and capacity.
	if err := nw.checkNode(u); err != nil {
		return err
	}
	if err := nw.checkNode(v); err != nil {
		return err
	}
	if c < 0 {
		return fmt.Errorf("flownet: AddEdge(%d,%d,%d): %w", u, v, c, ErrNegativeCapacity)
	}

	// 2) First contact between the pair: wire adjacency once, both ways.
	if nw.res[nw.at(u, v)] == 0 && nw.res[nw.at(v, u)] == 0 {
		nw.adj[u] = append(nw.adj[u], v)
		if u != v {
			nw.adj[v] = append(nw.adj[v], u)
		}
	}

	// 3) Accumulate capacity on the forward arc only.
	nw.res[nw.at(u, v)] += c
	nw.reg[nw.at(u, v)] += c

	return nil
}

// Capacity returns the current residual capacity on the arc u→v.
// Before MaxFlow runs it equals the registered capacity.
func (nw *Network) Capacity(u, v int) (int64, error) {
	if err := nw.checkNode(u); err != nil {
		return 0, err
	}
	if err := nw.checkNode(v); err != nil {
		return 0, err
	}
	return nw.res[nw.at(u, v)], nil
}

// RegisteredCapacity returns the capacity on the arc u→v as accumulated by
// AddEdge, untouched by any flow computation.
func (nw *Network) RegisteredCapacity(u, v int) (int64, error) {
	if err := nw.checkNode(u); err != nil {
		return 0, err
	}
	if err := nw.checkNode(v); err != nil {
		return 0, err
	}
	return nw.reg[nw.at(u, v)], nil
}

// Neighbors returns a copy of u's adjacency list in insertion order.
func (nw *Network) Neighbors(u int) ([]int, error) {
	if err := nw.checkNode(u); err != nil {
		return nil, err
	}
	out := make([]int, len(nw.adj[u]))
	copy(out, nw.adj[u])
	return out, nil
}

// Reset restores every residual capacity to its registered value,
// discarding all pushed flow. Adjacency lists are untouched.
// Complexity: O(n²).
func (nw *Network) Reset() {
	copy(nw.res, nw.reg)
}

// UsedEdges derives, for every unordered node pair u < v, the flow carried
// across the pair, and returns the pairs with positive carried flow in
// ascending (u, v) order.
//
// Carried flow is the net accumulation on the reverse arc above its
// registered capacity: pushing b units u→v raises res[v][u] by b, so for a
// pair whose reverse arc started at zero the carried flow is exactly the
// reverse residual. The derivation is read-only and idempotent.
//
// Complexity: O(n²).
func (nw *Network) UsedEdges() []EdgeFlow {
	var (
		out  []EdgeFlow
		u, v int
		net  int64
	)
	for u = 0; u < nw.n; u++ {
		for v = u + 1; v < nw.n; v++ {
			// net > 0 means flow crossed u→v, net < 0 means v→u.
			net = nw.res[nw.at(v, u)] - nw.reg[nw.at(v, u)]
			switch {
			case net > 0:
				out = append(out, EdgeFlow{U: u, V: v, Flow: net})
			case net < 0:
				out = append(out, EdgeFlow{U: u, V: v, Flow: -net})
			}
		}
	}
	return out
}
