package flownet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velkatern/biopath/flownet"
)

func TestNewNetwork_RejectsNonPositiveOrder(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := flownet.NewNetwork(n)
		require.ErrorIs(t, err, flownet.ErrInvalidOrder, "n=%d", n)
	}
}

func TestNewNetwork_StartsEmpty(t *testing.T) {
	nw, err := flownet.NewNetwork(3)
	require.NoError(t, err)
	require.Equal(t, 3, nw.Order())

	for u := 0; u < 3; u++ {
		for v := 0; v < 3; v++ {
			c, err := nw.Capacity(u, v)
			require.NoError(t, err)
			require.Zero(t, c)
		}
		nbrs, err := nw.Neighbors(u)
		require.NoError(t, err)
		require.Empty(t, nbrs)
	}
}

func TestAddEdge_Validation(t *testing.T) {
	nw, err := flownet.NewNetwork(3)
	require.NoError(t, err)

	require.ErrorIs(t, nw.AddEdge(-1, 2, 1), flownet.ErrNodeOutOfRange)
	require.ErrorIs(t, nw.AddEdge(0, 3, 1), flownet.ErrNodeOutOfRange)
	require.ErrorIs(t, nw.AddEdge(0, 1, -5), flownet.ErrNegativeCapacity)
}

func TestAddEdge_AdjacencyRegisteredOncePerPair(t *testing.T) {
	nw, err := flownet.NewNetwork(3)
	require.NoError(t, err)

	// forward, reverse, and a repeat: still one adjacency entry each way
	require.NoError(t, nw.AddEdge(0, 1, 4))
	require.NoError(t, nw.AddEdge(1, 0, 4))
	require.NoError(t, nw.AddEdge(0, 1, 2))

	n0, err := nw.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, n0)

	n1, err := nw.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{0}, n1)
}

func TestAddEdge_AccumulatesCapacity(t *testing.T) {
	nw, err := flownet.NewNetwork(2)
	require.NoError(t, err)

	require.NoError(t, nw.AddEdge(0, 1, 4))
	require.NoError(t, nw.AddEdge(0, 1, 2))

	c, err := nw.Capacity(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(6), c)

	// reverse direction is independent
	rev, err := nw.Capacity(1, 0)
	require.NoError(t, err)
	require.Zero(t, rev)
}

func TestAddEdge_InsertionOrderPreserved(t *testing.T) {
	nw, err := flownet.NewNetwork(5)
	require.NoError(t, err)

	require.NoError(t, nw.AddEdge(0, 3, 1))
	require.NoError(t, nw.AddEdge(0, 1, 1))
	require.NoError(t, nw.AddEdge(0, 4, 1))
	require.NoError(t, nw.AddEdge(0, 2, 1))

	nbrs, err := nw.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 4, 2}, nbrs, "BFS tie-break order is insertion order")
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	nw, err := flownet.NewNetwork(3)
	require.NoError(t, err)
	require.NoError(t, nw.AddEdge(0, 1, 1))
	require.NoError(t, nw.AddEdge(0, 2, 1))

	nbrs, err := nw.Neighbors(0)
	require.NoError(t, err)
	nbrs[0] = 99

	again, err := nw.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, again, "internal adjacency must not alias out")
}

func TestCapacity_Validation(t *testing.T) {
	nw, err := flownet.NewNetwork(2)
	require.NoError(t, err)

	_, err = nw.Capacity(0, 2)
	require.ErrorIs(t, err, flownet.ErrNodeOutOfRange)
	_, err = nw.RegisteredCapacity(-1, 0)
	require.ErrorIs(t, err, flownet.ErrNodeOutOfRange)
	_, err = nw.Neighbors(5)
	require.ErrorIs(t, err, flownet.ErrNodeOutOfRange)
}

func TestUsedEdges_EmptyBeforeFlow(t *testing.T) {
	nw, err := flownet.NewNetwork(3)
	require.NoError(t, err)
	require.NoError(t, nw.AddEdge(0, 1, 5))
	require.NoError(t, nw.AddEdge(1, 2, 5))

	require.Empty(t, nw.UsedEdges(), "no flow pushed yet")
}
