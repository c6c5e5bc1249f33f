package logging

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

const timeLayout = time.RFC3339

// field is a flattened attribute; group names are joined into the key with ".".
type field struct {
	key   string
	value slog.Value
}

func appendFields(dst []field, groups []string, attrs ...slog.Attr) []field {
	for _, attr := range attrs {
		dst = appendField(dst, groups, attr)
	}
	return dst
}

func appendField(dst []field, groups []string, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			groups = append(slices.Clip(groups), attr.Key)
		}
		return appendFields(dst, groups, attr.Value.Group()...)
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(append(slices.Clip(groups), key), ".")
	}
	if key == "" {
		return dst
	}
	return append(dst, field{key: key, value: attr.Value})
}

func recordFields(preset []field, groups []string, record slog.Record) []field {
	out := make([]field, len(preset), len(preset)+record.NumAttrs())
	copy(out, preset)
	record.Attrs(func(attr slog.Attr) bool {
		out = appendField(out, groups, attr)
		return true
	})
	return out
}

func writeFields(b *strings.Builder, fields []field) {
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(quoteIfNeeded(plainValue(f.value)))
	}
}

// plainValue renders v without quoting.
func plainValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().UTC().Format(timeLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return strconv.Quote(s)
		}
	}
	return s
}
