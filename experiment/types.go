package experiment

import (
	"time"
)

// CorridorRecord is one corridor-sweep measurement: a random network of
// Habitats patches, the corridors its build produced, and the timed
// max-flow solve.
type CorridorRecord struct {
	Habitats  int
	Corridors int
	Elapsed   time.Duration
	MaxFlow   int64
}

// Trial is one heuristic's outcome on an assembly instance. Accuracy is
// measured against the reference sequence but kept out of the CSV layout.
type Trial struct {
	Elapsed      time.Duration
	TotalOverlap int
	Accuracy     float64
}

// AssemblyRecord is one assembly-sweep measurement: a random fragment set
// of Fragments reads, its overlap graph size, and one Trial per
// heuristic.
type AssemblyRecord struct {
	Fragments       int
	Edges           int
	Greedy          Trial
	NearestNeighbor Trial
	Savings         Trial
}

// CorridorSink consumes corridor-sweep records as they are produced.
type CorridorSink interface {
	WriteCorridor(rec CorridorRecord) error
}

// AssemblySink consumes assembly-sweep records as they are produced.
type AssemblySink interface {
	WriteAssembly(rec AssemblyRecord) error
}

// NullSink discards every record. Useful for tests and for runs where
// only the logged progress matters.
type NullSink struct{}

// NewNullSink creates a discarding sink.
func NewNullSink() *NullSink {
	return &NullSink{}
}

// WriteCorridor does nothing.
func (*NullSink) WriteCorridor(CorridorRecord) error { return nil }

// WriteAssembly does nothing.
func (*NullSink) WriteAssembly(AssemblyRecord) error { return nil }

// Ensure NullSink implements both sinks.
var (
	_ CorridorSink = (*NullSink)(nil)
	_ AssemblySink = (*NullSink)(nil)
)
