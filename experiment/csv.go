package experiment

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var (
	corridorHeader = []string{"n_habitats", "corridors", "time_ms", "max_flow"}
	assemblyHeader = []string{
		"n_fragments", "edges",
		"greedy_time_ms", "greedy_overlap",
		"nn_time_ms", "nn_overlap",
		"savings_time_ms", "savings_overlap",
	}
)

// formatMillis renders a duration as fractional milliseconds with
// microsecond precision, the unit the result files have always used.
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000.0, 'f', 3, 64)
}

// CSVCorridorSink streams corridor records to w, one row per record,
// emitting the header before the first row. Rows are flushed as they are
// written so partially completed sweeps still leave usable files.
type CSVCorridorSink struct {
	w      *csv.Writer
	header bool
}

// NewCSVCorridorSink wraps w in a corridor CSV sink.
func NewCSVCorridorSink(w io.Writer) *CSVCorridorSink {
	return &CSVCorridorSink{w: csv.NewWriter(w)}
}

// WriteCorridor appends one row, writing the header first if needed.
func (s *CSVCorridorSink) WriteCorridor(rec CorridorRecord) error {
	if !s.header {
		if err := s.w.Write(corridorHeader); err != nil {
			return err
		}
		s.header = true
	}
	row := []string{
		strconv.Itoa(rec.Habitats),
		strconv.Itoa(rec.Corridors),
		formatMillis(rec.Elapsed),
		strconv.FormatInt(rec.MaxFlow, 10),
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// CSVAssemblySink streams assembly records to w in the canonical column
// layout: per heuristic, its time and its total overlap.
type CSVAssemblySink struct {
	w      *csv.Writer
	header bool
}

// NewCSVAssemblySink wraps w in an assembly CSV sink.
func NewCSVAssemblySink(w io.Writer) *CSVAssemblySink {
	return &CSVAssemblySink{w: csv.NewWriter(w)}
}

// WriteAssembly appends one row, writing the header first if needed.
func (s *CSVAssemblySink) WriteAssembly(rec AssemblyRecord) error {
	if !s.header {
		if err := s.w.Write(assemblyHeader); err != nil {
			return err
		}
		s.header = true
	}
	row := []string{
		strconv.Itoa(rec.Fragments),
		strconv.Itoa(rec.Edges),
		formatMillis(rec.Greedy.Elapsed),
		strconv.Itoa(rec.Greedy.TotalOverlap),
		formatMillis(rec.NearestNeighbor.Elapsed),
		strconv.Itoa(rec.NearestNeighbor.TotalOverlap),
		formatMillis(rec.Savings.Elapsed),
		strconv.Itoa(rec.Savings.TotalOverlap),
	}
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// Ensure the CSV sinks implement their interfaces.
var (
	_ CorridorSink = (*CSVCorridorSink)(nil)
	_ AssemblySink = (*CSVAssemblySink)(nil)
)
