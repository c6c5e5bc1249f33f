package conversion

import "fmt"

// BiMap is a read-only bidirectional mapping. Forward pairs may map to the
// empty string (no counterpart); those pairs have no reverse entry.
type BiMap struct {
	forward map[string]string
	reverse map[string]string
}

type pair struct {
	key   string
	value string
}

// newBiMap builds both directions at once. A non-empty value claimed by two
// keys, or a key listed twice, is a defect in the static data and panics.
func newBiMap(pairs []pair) *BiMap {
	m := &BiMap{
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := m.forward[p.key]; dup {
			panic(fmt.Sprintf("conversion: duplicate key %q", p.key))
		}
		m.forward[p.key] = p.value
		if p.value == "" {
			continue
		}
		if prev, dup := m.reverse[p.value]; dup {
			panic(fmt.Sprintf("conversion: %q claimed by both %q and %q", p.value, prev, p.key))
		}
		m.reverse[p.value] = p.key
	}
	return m
}

// Inverse returns a view with the directions swapped.
func (m *BiMap) Inverse() *BiMap {
	if m == nil {
		return nil
	}
	return &BiMap{forward: m.reverse, reverse: m.forward}
}

// Get returns the mapped value and whether key is present.
func (m *BiMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.forward[key]
	return v, ok
}

// Len returns the number of forward pairs.
func (m *BiMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.forward)
}

// Keys returns the forward keys in unspecified order.
func (m *BiMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.forward))
	for k := range m.forward {
		out = append(out, k)
	}
	return out
}
