// Package descriptor rewrites block-state and model descriptors so the
// identifiers they reference match the conventions of a target revision.
//
// Documents are decoded into generic maps with json.Number values, which
// keeps numeric literals verbatim. Output is compact JSON with sorted keys.
package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"mcpackr/internal/complaint"
	"mcpackr/internal/conversion"
	"mcpackr/internal/pathmap"
	"mcpackr/internal/revision"
)

// ErrNoEquivalent marks a descriptor that references an identifier with no
// counterpart in the target revision. The whole asset must be dropped.
var ErrNoEquivalent = errors.New("no equivalent in target revision")

const namespace = "minecraft:"

// Rewriter translates descriptors from Source to Target conventions.
type Rewriter struct {
	Table  conversion.Table
	Source revision.ID
	Target revision.ID
	// Complaints receives soft issues. May be nil.
	Complaints *complaint.Set
	// InlineParentDisplay reproduces a known base model's display transforms
	// before its parent reference is dropped for the oldest revision.
	InlineParentDisplay bool
}

// New returns a rewriter using the conversion table for source and target.
func New(source, target revision.ID, complaints *complaint.Set) *Rewriter {
	return &Rewriter{
		Table:               conversion.For(source, target),
		Source:              source,
		Target:              target,
		Complaints:          complaints,
		InlineParentDisplay: true,
	}
}

// BlockState rewrites the model references of a block-state descriptor.
// name identifies the file in complaints.
func (r *Rewriter) BlockState(name string, data []byte) ([]byte, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if variants, ok := doc["variants"].(map[string]any); ok {
		for key, value := range variants {
			var list []any
			switch v := value.(type) {
			case []any:
				list = v
			case map[string]any:
				list = []any{v}
			default:
				r.complain("%s: Variant %q is of an invalid type.", name, key)
				continue
			}
			out := make([]any, 0, len(list))
			for _, entry := range list {
				props, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				if err := r.rewriteModelRef(props); err != nil {
					return nil, fmt.Errorf("%s: variant %q: %w", name, key, err)
				}
				out = append(out, props)
			}
			variants[key] = out
		}
	}

	if parts, ok := doc["multipart"].([]any); ok {
		for i, part := range parts {
			obj, ok := part.(map[string]any)
			if !ok {
				continue
			}
			switch apply := obj["apply"].(type) {
			case map[string]any:
				if err := r.rewriteModelRef(apply); err != nil {
					return nil, fmt.Errorf("%s: multipart %d: %w", name, i, err)
				}
			case []any:
				for _, entry := range apply {
					if props, ok := entry.(map[string]any); ok {
						if err := r.rewriteModelRef(props); err != nil {
							return nil, fmt.Errorf("%s: multipart %d: %w", name, i, err)
						}
					}
				}
			}
		}
	}

	return encode(doc)
}

func (r *Rewriter) rewriteModelRef(props map[string]any) error {
	raw, ok := props["model"].(string)
	if !ok {
		return nil
	}
	ref, ok := pathmap.SplitModelRef(raw, r.Source)
	if !ok {
		return nil
	}
	if mapped, found := r.Table.Model(ref.Name); found {
		if mapped == "" {
			return fmt.Errorf("model %q: %w", ref.Name, ErrNoEquivalent)
		}
		ref.Name = mapped
	}
	props["model"] = ref.Join(r.Target)
	return nil
}

// Model rewrites the texture references of a model descriptor and, for the
// oldest revision, removes a parent that cannot be combined with elements.
func (r *Rewriter) Model(name string, data []byte) ([]byte, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if textures, ok := doc["textures"].(map[string]any); ok {
		for key, value := range textures {
			raw, ok := value.(string)
			if !ok {
				continue
			}
			ref, ok := pathmap.SplitTextureRef(raw, r.Source)
			if !ok {
				continue
			}
			if mapped, found := r.Table.Texture(ref.Name); found {
				if mapped == "" {
					return nil, fmt.Errorf("%s: texture %q: %w", name, ref.Name, ErrNoEquivalent)
				}
				ref.Name = mapped
			}
			textures[key] = ref.Join(r.Target)
		}
	}

	if r.Target == revision.Oldest {
		parent, hasParent := doc["parent"]
		_, hasElements := doc["elements"]
		if hasParent && hasElements {
			if p, ok := parent.(string); ok && r.InlineParentDisplay {
				if views, known := baseDisplay(p); known {
					inlineDisplay(doc, views)
				}
			}
			delete(doc, "parent")
		}
	}

	return encode(doc)
}

func (r *Rewriter) complain(format string, args ...any) {
	if r.Complaints != nil {
		r.Complaints.Addf(format, args...)
	}
}

func decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode json: document is not an object")
	}
	return doc, nil
}

func encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
