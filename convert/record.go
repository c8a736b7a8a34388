// Package convert routes benchmark log lines into per-test CSV files.
package convert

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Header is the CSV header row written at the top of every results file.
var Header = []string{"iteration", "nreps", "total duration", "duration"}

// ErrMalformedIteration is wrapped by every error returned from
// ParseIteration.
var ErrMalformedIteration = errors.New("malformed iteration line")

var digitRun = regexp.MustCompile(`[0-9]+`)

// Record is one iteration of a test.
type Record struct {
	Iteration     int64
	NReps         int64
	TotalDuration int64
	Duration      float64
}

// Fields returns the record as CSV cells in Header order.
func (r Record) Fields() []string {
	return []string{
		strconv.FormatInt(r.Iteration, 10),
		strconv.FormatInt(r.NReps, 10),
		strconv.FormatInt(r.TotalDuration, 10),
		formatFloat(r.Duration),
	}
}

// ParseError describes an iteration line that could not become a Record.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrMalformedIteration, e.Reason, e.Line)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedIteration
}

// ParseIteration extracts iteration, repetition count and total duration
// from the digit runs of line, in that order.
func ParseIteration(line string) (Record, error) {
	runs := digitRun.FindAllString(line, -1)
	if len(runs) != 3 {
		return Record{}, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("found %d numbers, want 3", len(runs)),
		}
	}

	var vals [3]int64
	for i, run := range runs {
		v, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			return Record{}, &ParseError{
				Line:   line,
				Reason: fmt.Sprintf("number %q out of range", run),
			}
		}
		vals[i] = v
	}

	if vals[1] == 0 {
		return Record{}, &ParseError{Line: line, Reason: "nreps is zero"}
	}

	return Record{
		Iteration:     vals[0],
		NReps:         vals[1],
		TotalDuration: vals[2],
		Duration:      float64(vals[2]) / float64(vals[1]),
	}, nil
}

// formatFloat renders f the way the results files have always been
// written: shortest round-trip digits, a trailing ".0" on integral values
// and exponent form outside [1e-4, 1e16).
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
