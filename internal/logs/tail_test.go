package logs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"mcpackr/internal/logs"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcpackr.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func appendLog(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open append: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("append log: %v", err)
	}
}

func TestLastLines(t *testing.T) {
	path := writeLog(t, "a\nb\nc\n")

	chunk, err := logs.Last(path, 2, nil)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(chunk.Lines) != 2 || chunk.Lines[0] != "b" || chunk.Lines[1] != "c" {
		t.Fatalf("unexpected lines: %#v", chunk.Lines)
	}
	if chunk.Offset != 6 {
		t.Fatalf("expected offset 6, got %d", chunk.Offset)
	}

	chunk, err = logs.Last(path, 10, nil)
	if err != nil || len(chunk.Lines) != 3 || chunk.Lines[0] != "a" {
		t.Fatalf("short file: %#v (%v)", chunk.Lines, err)
	}
}

func TestLastFiltersAndSkipsPartialLine(t *testing.T) {
	path := writeLog(t, "run_id=a one\nrun_id=b two\nrun_id=a three\nrun_id=a part")

	chunk, err := logs.Last(path, 5, logs.Containing("run_id=a"))
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(chunk.Lines) != 2 || chunk.Lines[1] != "run_id=a three" {
		t.Fatalf("unexpected lines: %#v", chunk.Lines)
	}

	appendLog(t, path, "ial\n")
	next, err := logs.Since(path, chunk.Offset, nil)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(next.Lines) != 1 || next.Lines[0] != "run_id=a partial" {
		t.Fatalf("expected the completed line, got %#v", next.Lines)
	}
}

func TestMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.log")
	chunk, err := logs.Last(path, 5, nil)
	if err != nil || len(chunk.Lines) != 0 || chunk.Offset != 0 {
		t.Fatalf("expected empty chunk, got %#v (%v)", chunk, err)
	}
	if _, err := logs.Last(t.TempDir(), 5, nil); err == nil {
		t.Fatal("expected error for a directory")
	}
}

func TestSinceRestartsAfterTruncation(t *testing.T) {
	path := writeLog(t, "x\n")
	chunk, err := logs.Since(path, 100, nil)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(chunk.Lines) != 1 || chunk.Lines[0] != "x" {
		t.Fatalf("unexpected lines: %#v", chunk.Lines)
	}
}

func TestFollowEmitsNewLines(t *testing.T) {
	path := writeLog(t, "start\n")
	chunk, err := logs.Last(path, 1, nil)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []string
	done := make(chan error, 1)
	go func() {
		done <- logs.Follow(ctx, path, chunk.Offset, 10*time.Millisecond, nil, func(line string) {
			mu.Lock()
			got = append(got, line)
			mu.Unlock()
			cancel()
		})
	}()

	time.Sleep(50 * time.Millisecond)
	appendLog(t, path, "later\n")

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("follow did not return")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "later" {
		t.Fatalf("unexpected follow lines: %#v", got)
	}
}
