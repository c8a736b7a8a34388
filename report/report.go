// Package report formats a conversion run into a summary table.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/weiihann/compileresults/convert"
)

// Generate writes a markdown table describing each test in s.
func Generate(w io.Writer, s *convert.Summary) error {
	if s == nil || len(s.Tests) == 0 {
		return fmt.Errorf("no tests to report")
	}

	fmt.Fprintln(w, "## Test Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Test | Rows | Mean Duration | Status | File |")
	fmt.Fprintln(w, "|------|------|---------------|--------|------|")

	for _, t := range s.Tests {
		fmt.Fprintf(w, "| %s | %d | %s | %s | %s |\n",
			t.Name,
			t.Rows,
			formatDuration(t),
			status(t),
			t.Path,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Passthrough lines: %d\n", s.Passthrough)

	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped iteration lines: **%d**\n", s.Skipped)
	}

	return nil
}

func status(t convert.TestSummary) string {
	if t.Completed {
		return "complete"
	}

	return "abandoned"
}

func formatDuration(t convert.TestSummary) string {
	if t.Rows == 0 {
		return "-"
	}

	return strconv.FormatFloat(t.MeanDuration, 'f', 2, 64)
}
