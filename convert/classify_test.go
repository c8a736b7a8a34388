package convert

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line     string
		wantKind LineKind
		wantName string
	}{
		{"TEST START: run1", KindStart, "run1"},
		{"TEST START: ", KindStart, ""},
		{"TEST START: with spaces ", KindStart, "with spaces "},
		{"TEST START: TEST COMPLETE", KindStart, "TEST COMPLETE"},
		{"TEST START:run1", KindOther, ""},
		{"TEST COMPLETE", KindComplete, ""},
		{"TEST COMPLETE ", KindOther, ""},
		{"TEST COMPLETE\r", KindOther, ""},
		{"test complete", KindOther, ""},
		{"TEST RESULTS: 1 2 3", KindIteration, ""},
		{"TEST RESULTS:", KindOther, ""},
		{"hello world", KindOther, ""},
		{"", KindOther, ""},
	}

	for _, tt := range tests {
		kind, name := Classify(tt.line)
		if kind != tt.wantKind {
			t.Errorf("Classify(%q) kind = %s, want %s", tt.line, kind, tt.wantKind)
		}
		if name != tt.wantName {
			t.Errorf("Classify(%q) name = %q, want %q", tt.line, name, tt.wantName)
		}
	}
}
