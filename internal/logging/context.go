package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies one invocation of the porter.
	FieldRunID = "run_id"
	// FieldRevision is the pack_format being built.
	FieldRevision = "revision"
	// FieldPath is a pack-relative asset path.
	FieldPath = "path"
	// FieldArchive is an output archive location.
	FieldArchive = "archive"
)

type contextKey int

const (
	runIDKey contextKey = iota
	revisionKey
)

// WithRunID stores the run identifier on ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// WithRevision stores the revision being built on ctx.
func WithRevision(ctx context.Context, rev int) context.Context {
	return context.WithValue(ctx, revisionKey, rev)
}

// RevisionFromContext returns the revision stored by WithRevision.
func RevisionFromContext(ctx context.Context) (int, bool) {
	rev, ok := ctx.Value(revisionKey).(int)
	return rev, ok
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if rev, ok := RevisionFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldRevision, rev))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
