package convert

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Sink is the results file of a single test.
type Sink struct {
	name string
	path string
	file *os.File
	csv  *csv.Writer
	rows int
	sum  float64
}

// OpenSink creates dir/name.csv, truncating any previous file, and writes
// the header row.
func OpenSink(dir, name string) (*Sink, error) {
	path := filepath.Join(dir, name+".csv")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open sink %s: %w", path, err)
	}

	s := &Sink{
		name: name,
		path: path,
		file: f,
		csv:  csv.NewWriter(f),
	}
	// RFC 4180 line endings.
	s.csv.UseCRLF = true

	if err := s.csv.Write(Header); err != nil {
		f.Close()

		return nil, fmt.Errorf("write header %s: %w", path, err)
	}

	return s, nil
}

// Write appends rec as one row.
func (s *Sink) Write(rec Record) error {
	if err := s.csv.Write(rec.Fields()); err != nil {
		return fmt.Errorf("write row %s: %w", s.path, err)
	}

	s.rows++
	s.sum += rec.Duration

	return nil
}

// Close flushes buffered rows and releases the file.
func (s *Sink) Close() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		s.file.Close()

		return fmt.Errorf("flush %s: %w", s.path, err)
	}

	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	return nil
}

// Name returns the test name the sink was opened for.
func (s *Sink) Name() string { return s.name }

// Path returns the file path of the sink.
func (s *Sink) Path() string { return s.path }

// Rows returns the number of data rows written, excluding the header.
func (s *Sink) Rows() int { return s.rows }

func (s *Sink) meanDuration() float64 {
	if s.rows == 0 {
		return 0
	}

	return s.sum / float64(s.rows)
}
