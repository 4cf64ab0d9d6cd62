package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pontaoski/tacc/types"
)

func at(line int) types.Span {
	return types.SingleCharSpan(types.Position{Line: line, Column: 1})
}

func TestReporterCountsAndPrints(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)

	r.Errorf(at(3), "variable %s is undefined", "z")
	r.Errorf(at(7), "break not in loop or switch")
	r.Report(at(9), errors.New("line 9: syntax error"))

	if r.Count() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", r.Count())
	}

	want := "line 3: variable z is undefined\nline 7: break not in loop or switch\nline 9: syntax error\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("diagnostic output mismatch (-want +got):\n%s", diff)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	r := NewReporter(nil)
	r.Errorf(at(1), "x")
	if r.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", r.Count())
	}
	if got := r.Diagnostics()[0].String(); got != "line 1: x" {
		t.Errorf("unexpected rendering %q", got)
	}
}
