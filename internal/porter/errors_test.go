package porter_test

import (
	"errors"
	"strings"
	"testing"

	"mcpackr/internal/porter"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := porter.Wrap(porter.ErrOutput, "create archive", "/tmp/out.zip", base)
	if !errors.Is(err, porter.ErrOutput) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"create archive", "/tmp/out.zip", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaults(t *testing.T) {
	err := porter.Wrap(nil, "", "", nil)
	if !errors.Is(err, porter.ErrAsset) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "port failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}
