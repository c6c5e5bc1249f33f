package main

import (
	"fmt"
	"io"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Pack manifest", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Pack manifest:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
	if got := renderStatusLine("Summary", statusOK, "", false); got != fmt.Sprintf("%s%-*s [OK]", statusIndent, statusLabelWidth, "Summary:") {
		t.Fatalf("unexpected bare status line %q", got)
	}
}

func TestRenderComplaintNoColor(t *testing.T) {
	if got := renderComplaint("x is missing", false); got != "  ! x is missing" {
		t.Fatalf("unexpected complaint line %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]column{{title: "A"}, {title: "B", align: alignRight}}, [][]string{{"only"}})
	requireContains(t, out, "only")
	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty table for no columns")
	}
}
