// Package experiment runs timed size sweeps over both solvers and streams
// the measurements to pluggable sinks.
//
// # Sweeps
//
// RunCorridor generates a random habitat network per ladder size, builds
// its corridors, and times the max-flow solve. RunAssembly generates a
// random fragment set per size and times each assembly heuristic on the
// shared overlap graph; scoring against the reference sequence happens
// outside the timed region.
//
// Both sweeps are deterministic: instance n always uses seed base+n, so a
// sweep can be re-run and compared row by row.
//
// # Sinks
//
// A Runner writes one record per ladder size to an injected sink.
// CSVCorridorSink and CSVAssemblySink emit the canonical CSV layouts;
// NullSink discards records when only the logs matter. Pass nil sinks to
// NewRunner to default to NullSink.
//
// # Reports
//
// Each sweep returns a report carrying a fresh run ID, the start time,
// the total elapsed time and every record, so callers can post-process
// results without re-parsing sink output.
package experiment
