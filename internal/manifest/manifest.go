// Package manifest reads a pack.mcmeta file and renders the per-revision
// copy written into each ported archive.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"mcpackr/internal/revision"
)

// Placeholder is replaced by the target revision's label in descriptions.
const Placeholder = "%mcversions%"

// ErrMalformed reports a manifest without the expected pack object.
var ErrMalformed = errors.New("malformed pack manifest")

// Manifest is the source pack's declared format and description template.
type Manifest struct {
	Format revision.ID
	// Description is the raw JSON value of the description; usually a string,
	// but text components (objects or arrays) are accepted too.
	Description json.RawMessage
}

type file struct {
	Pack section `json:"pack"`
}

type section struct {
	PackFormat  int             `json:"pack_format"`
	Description json.RawMessage `json:"description"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var raw struct {
		Pack *struct {
			PackFormat  *int            `json:"pack_format"`
			Description json.RawMessage `json:"description"`
		} `json:"pack"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if raw.Pack == nil {
		return nil, fmt.Errorf("%w: missing \"pack\" object", ErrMalformed)
	}
	if raw.Pack.PackFormat == nil {
		return nil, fmt.Errorf("%w: missing pack_format", ErrMalformed)
	}
	desc := raw.Pack.Description
	if len(bytes.TrimSpace(desc)) == 0 || bytes.Equal(bytes.TrimSpace(desc), []byte("null")) {
		desc = json.RawMessage(`""`)
	}
	return &Manifest{Format: revision.ID(*raw.Pack.PackFormat), Description: desc}, nil
}

// DescriptionText returns the description when it is a plain string.
func (m *Manifest) DescriptionText() (string, bool) {
	var s string
	if err := json.Unmarshal(m.Description, &s); err != nil {
		return "", false
	}
	return s, true
}

// Render returns the manifest for rev with the placeholder substituted.
func (m *Manifest) Render(rev revision.ID) ([]byte, error) {
	label := rev.Label()
	var desc json.RawMessage
	if text, ok := m.DescriptionText(); ok {
		encoded, err := marshal(strings.ReplaceAll(text, Placeholder, label))
		if err != nil {
			return nil, err
		}
		desc = encoded
	} else {
		quoted, err := marshal(label)
		if err != nil {
			return nil, err
		}
		// Inside an existing JSON string the label must stay escaped.
		inner := quoted[1 : len(quoted)-1]
		desc = bytes.ReplaceAll(m.Description, []byte(Placeholder), inner)
	}
	return marshal(file{Pack: section{PackFormat: int(rev), Description: desc}})
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
