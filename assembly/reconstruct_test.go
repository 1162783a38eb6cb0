package assembly_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velkatern/biopath/assembly"
)

func TestReconstruct_WorkedOrder(t *testing.T) {
	asm := newWorked(t)

	got, err := asm.Reconstruct([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "ATCGATCGATACGTACGTACG", got)
}

func TestReconstruct_ZeroOverlapConcatenates(t *testing.T) {
	asm := newWorked(t)

	// reversing the chain leaves no usable overlaps between neighbors
	got, err := asm.Reconstruct([]int{4, 3, 2, 1, 0})
	require.NoError(t, err)
	require.Equal(t,
		workedFragments[4]+workedFragments[3]+workedFragments[2]+workedFragments[1]+workedFragments[0],
		got)
}

func TestReconstruct_EmptyOrder(t *testing.T) {
	asm, err := assembly.New(nil)
	require.NoError(t, err)

	got, err := asm.Reconstruct(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReconstruct_Validation(t *testing.T) {
	asm := newWorked(t)

	_, err := asm.Reconstruct([]int{0, 1, 2})
	require.ErrorIs(t, err, assembly.ErrOrderLength)

	_, err = asm.Reconstruct([]int{0, 1, 2, 3, 5})
	require.ErrorIs(t, err, assembly.ErrFragmentOutOfRange)

	_, err = asm.Reconstruct([]int{0, 1, 2, 3, 3})
	require.ErrorIs(t, err, assembly.ErrOrderNotPermutation)
}

func TestEvaluate_PerfectReconstruction(t *testing.T) {
	asm, err := assembly.New([]string{"ACGTA", "GTACG"})
	require.NoError(t, err)

	ev, err := asm.Evaluate([]int{0, 1}, "ACGTACG")
	require.NoError(t, err)
	require.Equal(t, 3, ev.TotalOverlap)
	require.InDelta(t, 100.0, ev.Accuracy, 1e-9)
}

func TestEvaluate_MisorderedReconstruction(t *testing.T) {
	asm, err := assembly.New([]string{"ACGTA", "GTACG"})
	require.NoError(t, err)

	// [1,0] assembles "GTACGTA": same length as the reference but shifted,
	// so not a single position lines up.
	ev, err := asm.Evaluate([]int{1, 0}, "ACGTACG")
	require.NoError(t, err)
	require.Equal(t, 3, ev.TotalOverlap)
	require.Zero(t, ev.Accuracy)
}

func TestEvaluate_EmptyReferenceSkipsAccuracy(t *testing.T) {
	asm := newWorked(t)

	ev, err := asm.Evaluate([]int{0, 1, 2, 3, 4}, "")
	require.NoError(t, err)
	require.Equal(t, 29, ev.TotalOverlap)
	require.Zero(t, ev.Accuracy)
}

func TestEvaluate_LengthMismatchPenalized(t *testing.T) {
	asm, err := assembly.New([]string{"ACGTA", "GTACG"})
	require.NoError(t, err)

	// assembled "ACGTACG" (7) vs reference "ACGTACGTT" (9): 7 matches
	// normalized by the longer length.
	ev, err := asm.Evaluate([]int{0, 1}, "ACGTACGTT")
	require.NoError(t, err)
	require.InDelta(t, 100*7.0/9.0, ev.Accuracy, 1e-9)
}

func TestEvaluate_Validation(t *testing.T) {
	asm := newWorked(t)

	_, err := asm.Evaluate([]int{0}, "ACGT")
	require.ErrorIs(t, err, assembly.ErrOrderLength)
	_, err = asm.Evaluate([]int{0, 1, 2, 4, 4}, "ACGT")
	require.ErrorIs(t, err, assembly.ErrOrderNotPermutation)
}

func TestEvaluate_HeuristicResultsOnGeneratedSet(t *testing.T) {
	fragments, original, err := assembly.GenerateFragments(20, 15, 120, 42)
	require.NoError(t, err)
	asm, err := assembly.New(fragments)
	require.NoError(t, err)

	for _, h := range assembly.Heuristics() {
		res, err := asm.Assemble(context.Background(), h)
		require.NoError(t, err)

		ev, err := asm.Evaluate(res.Order, original)
		require.NoError(t, err, "heuristic %s", h)
		require.Equal(t, res.TotalOverlap, ev.TotalOverlap, "heuristic %s", h)
		require.GreaterOrEqual(t, ev.Accuracy, 0.0, "heuristic %s", h)
		require.LessOrEqual(t, ev.Accuracy, 100.0, "heuristic %s", h)
	}
}
