package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type failingHandler struct{ NoopHandler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("boom") }

func TestTeeHandlerCollapses(t *testing.T) {
	if _, ok := TeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	if TeeHandler(nil, inner) != inner {
		t.Fatal("expected a single handler to be returned unwrapped")
	}
}

func TestTeeLoggerRespectsEachLevel(t *testing.T) {
	var info, debug bytes.Buffer
	base := slog.New(slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger := TeeLogger(base, slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("run_id", "r1").Debug("detail")
	logger.Info("summary")

	if strings.Contains(info.String(), "detail") || !strings.Contains(info.String(), "summary") {
		t.Fatalf("unexpected info output: %q", info.String())
	}
	if !strings.Contains(debug.String(), "msg=detail run_id=r1") || !strings.Contains(debug.String(), "summary") {
		t.Fatalf("unexpected debug output: %q", debug.String())
	}
}

func TestTeeHandlerJoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(TeeHandler(failingHandler{}, slog.NewTextHandler(&buf, nil)))
	err := logger.Handler().Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0))
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if !strings.Contains(buf.String(), "still written") {
		t.Fatalf("second handler skipped: %q", buf.String())
	}
}
