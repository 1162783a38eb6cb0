package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/velkatern/biopath/assembly"
	"github.com/velkatern/biopath/corridor"
)

// Runner executes sweeps against injected sinks.
//
// The Runner is stateless apart from its collaborators, so one Runner can
// serve any number of sweeps, sequentially or from separate goroutines as
// long as the sinks tolerate it.
type Runner struct {
	Corridors  CorridorSink
	Assemblies AssemblySink
	Logger     *log.Logger
}

// NewRunner creates a runner with the given sinks.
// Nil sinks default to NullSink, a nil logger to log.Default().
func NewRunner(corridors CorridorSink, assemblies AssemblySink, logger *log.Logger) *Runner {
	if corridors == nil {
		corridors = NewNullSink()
	}
	if assemblies == nil {
		assemblies = NewNullSink()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Corridors:  corridors,
		Assemblies: assemblies,
		Logger:     logger,
	}
}

// CorridorReport summarizes one corridor sweep.
type CorridorReport struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Records []CorridorRecord
}

// AssemblyReport summarizes one assembly sweep.
type AssemblyReport struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Records []AssemblyRecord
}

// RunCorridor sweeps the corridor ladder: per size, generate a random
// habitat network, build its corridors, and time the max-flow solve. The
// generation and build stay outside the timed region.
//
// Records written before a failure remain in the report and in the sink.
func (r *Runner) RunCorridor(ctx context.Context, cfg CorridorConfig) (CorridorReport, error) {
	report := CorridorReport{RunID: uuid.NewString(), Started: time.Now()}
	r.Logger.Info("starting corridor sweep", "run_id", report.RunID, "sizes", cfg.Sizes)

	for _, n := range cfg.Sizes {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		net, err := corridor.Random(n, cfg.RegionSize, cfg.SeedBase+int64(n))
		if err != nil {
			return report, fmt.Errorf("experiment: generate %d habitats: %w", n, err)
		}
		if err := net.Build(cfg.MaxDistance); err != nil {
			return report, fmt.Errorf("experiment: build corridors for %d habitats: %w", n, err)
		}

		start := time.Now()
		res, err := net.Solve(ctx)
		if err != nil {
			return report, fmt.Errorf("experiment: solve %d habitats: %w", n, err)
		}
		rec := CorridorRecord{
			Habitats:  n,
			Corridors: net.CorridorCount(),
			Elapsed:   time.Since(start),
			MaxFlow:   res.MaxFlow,
		}

		if err := r.Corridors.WriteCorridor(rec); err != nil {
			return report, fmt.Errorf("experiment: write corridor record: %w", err)
		}
		report.Records = append(report.Records, rec)

		r.Logger.Info("corridor instance solved",
			"habitats", rec.Habitats,
			"corridors", rec.Corridors,
			"max_flow", rec.MaxFlow,
			"duration", rec.Elapsed)
	}

	report.Elapsed = time.Since(report.Started)
	r.Logger.Info("corridor sweep done",
		"run_id", report.RunID,
		"instances", len(report.Records),
		"duration", report.Elapsed)
	return report, nil
}

// RunAssembly sweeps the assembly ladder: per size, generate a random
// fragment set, build one overlap graph, and time each heuristic on it.
// Scoring against the reference sequence happens outside the timed
// region.
//
// Records written before a failure remain in the report and in the sink.
func (r *Runner) RunAssembly(ctx context.Context, cfg AssemblyConfig) (AssemblyReport, error) {
	report := AssemblyReport{RunID: uuid.NewString(), Started: time.Now()}
	r.Logger.Info("starting assembly sweep", "run_id", report.RunID, "sizes", cfg.Sizes)

	for _, n := range cfg.Sizes {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		fragments, original, err := assembly.GenerateFragments(
			n, cfg.FragmentLength, cfg.SequenceLength, cfg.SeedBase+int64(n))
		if err != nil {
			return report, fmt.Errorf("experiment: generate %d fragments: %w", n, err)
		}
		asm, err := assembly.New(fragments, assembly.WithMinOverlap(cfg.MinOverlap))
		if err != nil {
			return report, fmt.Errorf("experiment: overlap graph for %d fragments: %w", n, err)
		}

		rec := AssemblyRecord{Fragments: n, Edges: asm.EdgeCount()}
		for _, h := range assembly.Heuristics() {
			trial, err := r.runTrial(ctx, asm, h, original)
			if err != nil {
				return report, fmt.Errorf("experiment: %s on %d fragments: %w", h, n, err)
			}
			switch h {
			case assembly.HeuristicGreedy:
				rec.Greedy = trial
			case assembly.HeuristicNearestNeighbor:
				rec.NearestNeighbor = trial
			case assembly.HeuristicSavings:
				rec.Savings = trial
			}
		}

		if err := r.Assemblies.WriteAssembly(rec); err != nil {
			return report, fmt.Errorf("experiment: write assembly record: %w", err)
		}
		report.Records = append(report.Records, rec)

		r.Logger.Info("assembly instance done",
			"fragments", rec.Fragments,
			"edges", rec.Edges,
			"greedy", rec.Greedy.TotalOverlap,
			"nearest_neighbor", rec.NearestNeighbor.TotalOverlap,
			"savings", rec.Savings.TotalOverlap)
	}

	report.Elapsed = time.Since(report.Started)
	r.Logger.Info("assembly sweep done",
		"run_id", report.RunID,
		"instances", len(report.Records),
		"duration", report.Elapsed)
	return report, nil
}

// runTrial times one heuristic and then scores its order against the
// reference sequence.
func (r *Runner) runTrial(ctx context.Context, asm *assembly.Assembler, h assembly.Heuristic, reference string) (Trial, error) {
	start := time.Now()
	res, err := asm.Assemble(ctx, h)
	elapsed := time.Since(start)
	if err != nil {
		return Trial{}, err
	}

	ev, err := asm.Evaluate(res.Order, reference)
	if err != nil {
		return Trial{}, err
	}
	return Trial{
		Elapsed:      elapsed,
		TotalOverlap: res.TotalOverlap,
		Accuracy:     ev.Accuracy,
	}, nil
}
