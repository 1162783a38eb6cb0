package flownet_test

import (
	"context"
	"fmt"

	"github.com/velkatern/biopath/flownet"
)

// ExampleNetwork_MaxFlow demonstrates max flow on a two-path network.
// Network:
//
//	0→1(3)→3
//	0→2(4)→3(2)
//
// Expected flow: 3 along the top path + 2 along the bottom ⇒ 5
func ExampleNetwork_MaxFlow() {
	nw, _ := flownet.NewNetwork(4)
	_ = nw.AddEdge(0, 1, 3)
	_ = nw.AddEdge(1, 3, 3)
	_ = nw.AddEdge(0, 2, 4)
	_ = nw.AddEdge(2, 3, 2)

	maxFlow, _ := nw.MaxFlow(context.Background(), 0, 3)
	fmt.Println(maxFlow)
	// Output:
	// 5
}

// ExampleNetwork_UsedEdges shows how carried flow is read back after a
// solve: the chain pushes its bottleneck of 5 through every corridor.
func ExampleNetwork_UsedEdges() {
	nw, _ := flownet.NewNetwork(4)
	for _, e := range []struct {
		u, v int
		c    int64
	}{{0, 1, 10}, {1, 2, 5}, {2, 3, 10}} {
		_ = nw.AddEdge(e.u, e.v, e.c)
		_ = nw.AddEdge(e.v, e.u, e.c)
	}

	maxFlow, _ := nw.MaxFlow(context.Background(), 0, 3)
	fmt.Println("max flow:", maxFlow)
	for _, e := range nw.UsedEdges() {
		fmt.Printf("%d<->%d carries %d\n", e.U, e.V, e.Flow)
	}
	// Output:
	// max flow: 5
	// 0<->1 carries 5
	// 1<->2 carries 5
	// 2<->3 carries 5
}
