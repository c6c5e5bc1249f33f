package textutil

import (
	"testing"

	"mcpackr/internal/revision"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"  Faithful  ":     "Faithful",
		"a/b\\c:d*e":       "a-b-c-d-e",
		`what?"<>|`:        "what",
		"":                 "",
		"Pack: The Return": "Pack- The Return",
	}
	for in, want := range cases {
		if got := SanitizeFileName(in); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestArchiveName(t *testing.T) {
	if got := ArchiveName("Demo", revision.V2); got != "Demo (1.9 - 1.10.2).zip" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := ArchiveName(" ", revision.V4); got != "pack (1.13 - 1.13.1).zip" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}
