package convert

// TestSummary holds the statistics of one test seen during a run.
type TestSummary struct {
	Name         string
	Path         string
	Rows         int
	MeanDuration float64
	Completed    bool
}

// Summary describes a whole run.
type Summary struct {
	Tests       []TestSummary
	Passthrough int
	Skipped     int
}

func (s *Summary) add(sink *Sink, completed bool) {
	s.Tests = append(s.Tests, TestSummary{
		Name:         sink.Name(),
		Path:         sink.Path(),
		Rows:         sink.Rows(),
		MeanDuration: sink.meanDuration(),
		Completed:    completed,
	})
}
