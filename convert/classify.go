package convert

import "strings"

// Line markers emitted by the benchmark programs.
const (
	StartMarker     = "TEST START: "
	IterationMarker = "TEST RESULTS: "
	CompleteMarker  = "TEST COMPLETE"
)

// LineKind is the role of a single input line.
type LineKind int

const (
	KindOther LineKind = iota
	KindStart
	KindComplete
	KindIteration
)

func (k LineKind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindComplete:
		return "complete"
	case KindIteration:
		return "iteration"
	default:
		return "other"
	}
}

// Classify returns the kind of line. For KindStart the test name is
// returned as well.
func Classify(line string) (LineKind, string) {
	if name, ok := strings.CutPrefix(line, StartMarker); ok {
		return KindStart, name
	}

	if line == CompleteMarker {
		return KindComplete, ""
	}

	if strings.HasPrefix(line, IterationMarker) {
		return KindIteration, ""
	}

	return KindOther, ""
}
