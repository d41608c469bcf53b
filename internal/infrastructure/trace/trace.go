// Package trace writes per-step body records as CSV for offline inspection
// of collision behavior.
package trace

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Record is one body's state after a step
type Record struct {
	Frame    int     `csv:"frame"`
	Body     string  `csv:"body"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	VX       float64 `csv:"vx"`
	VY       float64 `csv:"vy"`
	State    string  `csv:"state"`
	Collided bool    `csv:"collided"`
	HitCol   int     `csv:"hit_col"`
	HitRow   int     `csv:"hit_row"`
	NormalX  float64 `csv:"normal_x"`
	NormalY  float64 `csv:"normal_y"`
	Depth    float64 `csv:"depth"`
}

// Writer appends records to a CSV stream, writing the header once.
// A nil Writer discards everything.
type Writer struct {
	out           io.Writer
	headerWritten bool
	count         int
}

// NewWriter creates a trace writer. Returns nil if out is nil (tracing disabled).
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		return nil
	}
	return &Writer{out: out}
}

// Write appends records
func (w *Writer) Write(records ...Record) error {
	if w == nil || len(records) == 0 {
		return nil
	}

	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		w.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	w.count += len(records)
	return nil
}

// Count returns the number of records written
func (w *Writer) Count() int {
	if w == nil {
		return 0
	}
	return w.count
}

// Read parses a trace written by Writer
func Read(in io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}
