package logging

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// SinkHandler forwards each record as one line of text to a callback.
// Attributes are appended as key=value pairs.
type SinkHandler struct {
	mu     *sync.Mutex
	sink   func(string)
	level  slog.Leveler
	fields []field
	groups []string
}

// NewSinkHandler returns a handler calling sink for records at or above level.
// A nil level accepts info and above.
func NewSinkHandler(sink func(string), level slog.Leveler) *SinkHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SinkHandler{mu: &sync.Mutex{}, sink: sink, level: level}
}

// NewSinkLogger wraps sink in a logger.
func NewSinkLogger(sink func(string)) *slog.Logger {
	if sink == nil {
		return NewNop()
	}
	return slog.New(NewSinkHandler(sink, nil))
}

func (h *SinkHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.sink != nil && level >= h.level.Level()
}

func (h *SinkHandler) Handle(_ context.Context, record slog.Record) error {
	if h.sink == nil {
		return nil
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(record.Message))
	writeFields(&b, recordFields(h.fields, h.groups, record))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sink(b.String())
	return nil
}

func (h *SinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fields = appendFields(slices.Clip(h.fields), h.groups, attrs...)
	return &clone
}

func (h *SinkHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}
