package revision

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a resource pack format revision (the pack_format value).
type ID int

// Class groups revisions that share folder and identifier conventions.
type Class int

const (
	// Legacy covers every revision below the flattening threshold.
	Legacy Class = iota
	// Modern covers the threshold revision and everything after it.
	Modern
)

// Threshold is the first revision using modern names.
const Threshold ID = 4

const (
	V1 ID = 1
	V2 ID = 2
	V3 ID = 3
	V4 ID = 4
)

// Latest is the newest revision the porter can emit.
const Latest = V4

// Oldest is the earliest revision the porter can emit.
const Oldest = V1

// Revision is one entry of the catalog.
type Revision struct {
	ID    ID
	Label string
}

var catalog = []Revision{
	{ID: V1, Label: "1.6.1 - 1.8.9"},
	{ID: V2, Label: "1.9 - 1.10.2"},
	{ID: V3, Label: "1.11 - 1.12.2"},
	{ID: V4, Label: "1.13 - 1.13.1"},
}

// All returns the catalog in ascending order. The slice is a copy.
func All() []Revision {
	out := make([]Revision, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns every catalog id in ascending order.
func IDs() []ID {
	out := make([]ID, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, r.ID)
	}
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Revision, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Revision{}, false
}

// Known reports whether id is in the catalog.
func (id ID) Known() bool {
	_, ok := Lookup(id)
	return ok
}

// Label returns the human readable version range, or "" for unknown ids.
func (id ID) Label() string {
	r, _ := Lookup(id)
	return r.Label
}

// Class derives the naming convention used by id.
func (id ID) Class() Class {
	if id < Threshold {
		return Legacy
	}
	return Modern
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

func (c Class) String() string {
	switch c {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Crosses reports whether porting from source to target changes class.
func Crosses(source, target ID) bool {
	return source.Class() != target.Class()
}

// Parse resolves a user supplied target, either a numeric id or a label.
func Parse(value string) (ID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("revision: empty value")
	}
	if n, err := strconv.Atoi(value); err == nil {
		id := ID(n)
		if !id.Known() {
			return 0, fmt.Errorf("revision: unknown pack format %d", n)
		}
		return id, nil
	}
	for _, r := range catalog {
		if strings.EqualFold(r.Label, value) {
			return r.ID, nil
		}
	}
	return 0, fmt.Errorf("revision: unknown revision %q", value)
}

// Normalize deduplicates ids, drops unknown ones and returns them in catalog
// order. An empty input selects the whole catalog.
func Normalize(ids []ID) []ID {
	if len(ids) == 0 {
		return IDs()
	}
	want := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]ID, 0, len(want))
	for _, r := range catalog {
		if _, ok := want[r.ID]; ok {
			out = append(out, r.ID)
		}
	}
	return out
}
