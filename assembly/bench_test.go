package assembly_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/velkatern/biopath/assembly"
)

// benchInstance generates a deterministic fragment set sized like the
// experiment sweeps.
func benchInstance(b *testing.B, numFragments int) []string {
	b.Helper()
	fragments, _, err := assembly.GenerateFragments(numFragments, 15, 200, 42)
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	return fragments
}

// BenchmarkNew measures the O(N²·L) overlap matrix construction.
func BenchmarkNew(b *testing.B) {
	for _, n := range []int{10, 40, 100} {
		fragments, _, err := assembly.GenerateFragments(n, 15, 5*n+200, 42)
		if err != nil {
			b.Fatalf("generate: %v", err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := assembly.New(fragments); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkHeuristics measures each strategy on a prebuilt overlap graph,
// so only the ordering loop is timed.
func BenchmarkHeuristics(b *testing.B) {
	fragments := benchInstance(b, 40)
	asm, err := assembly.New(fragments)
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	ctx := context.Background()

	for _, h := range assembly.Heuristics() {
		h := h
		b.Run(string(h), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := asm.Assemble(ctx, h); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReconstruct measures reassembly of a fixed order.
func BenchmarkReconstruct(b *testing.B) {
	fragments := benchInstance(b, 40)
	asm, err := assembly.New(fragments)
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	res, err := asm.Greedy(context.Background())
	if err != nil {
		b.Fatalf("greedy: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := asm.Reconstruct(res.Order); err != nil {
			b.Fatal(err)
		}
	}
}
