package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velkatern/biopath/assembly"
)

// demoFragments are the five overlapping reads of the worked assembly
// instance. All heuristics recover the same order on it.
var demoFragments = []string{
	"ATCGATCGAT",
	"TCGATCGATA",
	"GATCGATACG",
	"ATACGTACGT",
	"CGTACGTACG",
}

// newAssemblyCmd creates the assembly command: the five-fragment DNA
// assembly demo run through every heuristic.
func newAssemblyCmd() *cobra.Command {
	var minOverlap int

	cmd := &cobra.Command{
		Use:   "assembly",
		Short: "Reassemble the DNA fragment demo",
		Long: `Reassemble the five-fragment DNA demo with every heuristic.

Fragments form an overlap graph: an edge records the longest suffix of
one fragment matching a prefix of another, when it reaches the minimum
overlap. Each heuristic orders all fragments along the graph and merges
them into a candidate sequence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			asm, err := assembly.New(demoFragments, assembly.WithMinOverlap(minOverlap))
			if err != nil {
				return err
			}
			logger.Debug("overlap graph built",
				"fragments", asm.FragmentCount(),
				"edges", asm.EdgeCount(),
				"min_overlap", asm.MinOverlap())

			printTitle("DNA fragment assembly")
			for i, f := range demoFragments {
				printDetail("fragment %d: %s", i, f)
			}

			for _, h := range assembly.Heuristics() {
				res, err := asm.Assemble(cmd.Context(), h)
				if err != nil {
					return err
				}
				printKeyValue(string(h), fmt.Sprintf("order %v, total overlap %d", res.Order, res.TotalOverlap))
				printDetail("%s", res.Sequence)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minOverlap, "min-overlap", assembly.DefaultMinOverlap, "minimum usable overlap length")
	return cmd
}
