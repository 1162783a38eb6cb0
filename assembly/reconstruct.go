package assembly

import (
	"fmt"
	"strings"
)

// validateOrder checks that order is a permutation of 0..N-1.
func (a *Assembler) validateOrder(order []int) error {
	if len(order) != a.n {
		return fmt.Errorf("assembly: order has %d entries for %d fragments: %w", len(order), a.n, ErrOrderLength)
	}
	seen := make([]bool, a.n)
	for _, idx := range order {
		if idx < 0 || idx >= a.n {
			return fmt.Errorf("assembly: order entry %d of %d: %w", idx, a.n, ErrFragmentOutOfRange)
		}
		if seen[idx] {
			return fmt.Errorf("assembly: fragment %d repeated: %w", idx, ErrOrderNotPermutation)
		}
		seen[idx] = true
	}
	return nil
}

// Reconstruct applies the assembly rule to an arbitrary order: the first
// fragment verbatim, then each subsequent fragment minus its recorded
// overlap with the predecessor. For an order returned by a heuristic this
// reproduces the heuristic's own Sequence exactly.
//
// Errors: ErrOrderLength, ErrFragmentOutOfRange, ErrOrderNotPermutation.
// Complexity: O(total output length).
func (a *Assembler) Reconstruct(order []int) (string, error) {
	if err := a.validateOrder(order); err != nil {
		return "", err
	}
	if len(order) == 0 {
		return "", nil
	}

	var assembled strings.Builder
	assembled.WriteString(a.fragments[order[0]])
	for k := 1; k < len(order); k++ {
		ov := a.overlap[a.at(order[k-1], order[k])]
		assembled.WriteString(a.fragments[order[k]][ov:])
	}
	return assembled.String(), nil
}

// Evaluate scores an order: the total overlap along consecutive pairs
// and, when reference is non-empty, the positional match percentage of
// the reconstruction against the reference (matches counted over the
// shorter prefix, normalized by the longer length). The percentage is a
// positional similarity, not an alignment; it is only meaningful when the
// order closely tracks the true fragment origin order.
//
// Errors: ErrOrderLength, ErrFragmentOutOfRange, ErrOrderNotPermutation.
func (a *Assembler) Evaluate(order []int, reference string) (Evaluation, error) {
	if err := a.validateOrder(order); err != nil {
		return Evaluation{}, err
	}

	var ev Evaluation
	for k := 1; k < len(order); k++ {
		ev.TotalOverlap += a.overlap[a.at(order[k-1], order[k])]
	}
	if reference == "" {
		return ev, nil
	}

	assembled, err := a.Reconstruct(order)
	if err != nil {
		return Evaluation{}, err
	}
	var matches, i int
	shorter := len(assembled)
	if len(reference) < shorter {
		shorter = len(reference)
	}
	for i = 0; i < shorter; i++ {
		if assembled[i] == reference[i] {
			matches++
		}
	}
	longer := len(assembled)
	if len(reference) > longer {
		longer = len(reference)
	}
	if longer > 0 {
		ev.Accuracy = 100 * float64(matches) / float64(longer)
	}
	return ev, nil
}
