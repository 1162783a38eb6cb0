// Package cli implements the biopath command-line interface.
//
// This package provides commands for the two solvers in this repository:
// the wildlife corridor max-flow demo, the DNA fragment assembly demo,
// and the timed experiment sweeps that produce the CSV result files. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - corridor: Solve the six-habitat reserve network demo
//   - assembly: Reassemble the five-fragment DNA demo
//   - experiments: Run both size sweeps and write CSV results
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
//
// # Example
//
//	import "github.com/velkatern/biopath/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the biopath CLI under ctx and returns an error if any
// command fails. Cancel ctx to interrupt long sweeps.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the command context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree with all subcommands and the
// persistent logging flag.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "biopath",
		Short:        "biopath solves corridor max-flow and DNA assembly problems",
		Long:         `biopath bundles two classic reductions over biological networks: wildlife corridor design solved as maximum flow, and DNA fragment assembly approximated with overlap heuristics. Demos run each on a worked instance; the experiments command times both over growing instance ladders.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("biopath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCorridorCmd())
	root.AddCommand(newAssemblyCmd())
	root.AddCommand(newExperimentsCmd())

	return root
}
