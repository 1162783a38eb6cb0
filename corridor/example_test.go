package corridor_test

import (
	"context"
	"fmt"

	"github.com/velkatern/biopath/corridor"
)

// ExampleNetwork_Solve plans corridors between two reserves linked by a
// chain of stepping-stone habitats 10 km apart.
func ExampleNetwork_Solve() {
	net, _ := corridor.NewNetwork(4, 0, 3)
	for h := 0; h < 4; h++ {
		_ = net.SetLocation(h, float64(h)*10, 0)
	}
	_ = net.Build(15)

	res, _ := net.Solve(context.Background())
	fmt.Println("movement capacity:", res.MaxFlow)
	for _, c := range res.Corridors {
		fmt.Printf("build %d<->%d for %d animals/year\n", c.A, c.B, c.Flow)
	}
	// Output:
	// movement capacity: 11
	// build 0<->1 for 11 animals/year
	// build 1<->2 for 11 animals/year
	// build 2<->3 for 11 animals/year
}

// ExampleCapacityForDistance shows the distance rule degrading capacity
// quadratically until the feasibility limit.
func ExampleCapacityForDistance() {
	for _, d := range []float64{0, 10, 20, 30, 35, 40} {
		fmt.Printf("%.0f km -> %d\n", d, corridor.CapacityForDistance(d, 35))
	}
	// Output:
	// 0 km -> 100
	// 10 km -> 51
	// 20 km -> 18
	// 30 km -> 2
	// 35 km -> 1
	// 40 km -> 0
}
