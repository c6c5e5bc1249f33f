// Package pathmap translates folder conventions that differ between the
// legacy and modern revision classes.
//
// Everything here is a pure lookup keyed by revision.Class, so callers never
// branch on the numeric threshold themselves.
package pathmap

import (
	"strings"

	"mcpackr/internal/revision"
)

// Category is a texture category folder.
type Category int

const (
	Blocks Category = iota
	Items
)

const (
	// AssetsRoot is the namespace root every remapped path lives under.
	AssetsRoot = "assets/minecraft/"
	// TexturesRoot holds the texture category folders.
	TexturesRoot = AssetsRoot + "textures/"
	// ModelsRoot holds model descriptors.
	ModelsRoot = AssetsRoot + "models/"
	// BlockStatesRoot holds block-state descriptors.
	BlockStatesRoot = AssetsRoot + "blockstates/"

	namespace = "minecraft:"
)

var categories = []Category{Blocks, Items}

var categoryDirs = map[Category]map[revision.Class]string{
	Blocks: {revision.Legacy: "blocks", revision.Modern: "block"},
	Items:  {revision.Legacy: "items", revision.Modern: "item"},
}

var overlayDirs = map[revision.Class]string{
	revision.Legacy: "mcpatcher",
	revision.Modern: "optifine",
}

func (c Category) String() string {
	return categoryDirs[c][revision.Modern]
}

// CategoryDir returns the folder name of category c for revision rev.
func CategoryDir(c Category, rev revision.ID) string {
	return categoryDirs[c][rev.Class()]
}

// OverlayDir returns the third-party overlay folder used by rev.
func OverlayDir(rev revision.ID) string {
	return overlayDirs[rev.Class()]
}

// TextureDir returns the pack-relative texture folder for c, with a trailing slash.
func TextureDir(c Category, rev revision.ID) string {
	return TexturesRoot + CategoryDir(c, rev) + "/"
}

// CategoryOf reports which texture category folder dir names for rev.
func CategoryOf(dir string, rev revision.ID) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(dir, CategoryDir(c, rev)) {
			return c, true
		}
	}
	return 0, false
}

// Remap rewrites the category or overlay folder of a pack-relative path from
// the conventions of one revision to another. Paths outside those folders and
// moves within one class are returned unchanged.
func Remap(path string, from, to revision.ID) string {
	if from.Class() == to.Class() {
		return path
	}
	segments := strings.Split(path, "/")
	if len(segments) < 4 || !strings.EqualFold(segments[0], "assets") || !strings.EqualFold(segments[1], "minecraft") {
		return path
	}
	switch {
	case strings.EqualFold(segments[2], "textures"):
		c, ok := CategoryOf(segments[3], from)
		if !ok {
			return path
		}
		segments[3] = CategoryDir(c, to)
	case strings.EqualFold(segments[2], OverlayDir(from)):
		segments[2] = OverlayDir(to)
	default:
		return path
	}
	return strings.Join(segments, "/")
}

// TextureRef is a texture reference found in a model descriptor, split into
// its parts.
type TextureRef struct {
	Namespaced bool
	Category   Category
	Name       string
}

// SplitTextureRef parses ref using the category folders of rev. ok is false
// when ref does not point into a block or item texture folder.
func SplitTextureRef(ref string, rev revision.ID) (TextureRef, bool) {
	rest, namespaced := strings.CutPrefix(ref, namespace)
	for _, c := range categories {
		if name, found := strings.CutPrefix(rest, CategoryDir(c, rev)+"/"); found && name != "" {
			return TextureRef{Namespaced: namespaced, Category: c, Name: name}, true
		}
	}
	return TextureRef{}, false
}

// Join renders the reference with the category folders of rev.
func (r TextureRef) Join(rev revision.ID) string {
	out := CategoryDir(r.Category, rev) + "/" + r.Name
	if r.Namespaced {
		return namespace + out
	}
	return out
}

// ModelRef is a model reference found in a block-state descriptor.
type ModelRef struct {
	Namespaced bool
	Name       string
}

// SplitModelRef parses a block-state model reference. Modern revisions write
// "block/<name>" and only those references are translated; legacy revisions
// write the bare model name.
func SplitModelRef(ref string, rev revision.ID) (ModelRef, bool) {
	if rev.Class() == revision.Legacy {
		if ref == "" {
			return ModelRef{}, false
		}
		return ModelRef{Name: ref}, true
	}
	rest, namespaced := strings.CutPrefix(ref, namespace)
	name, found := strings.CutPrefix(rest, "block/")
	if !found || name == "" {
		return ModelRef{}, false
	}
	return ModelRef{Namespaced: namespaced, Name: name}, true
}

// Join renders the reference for rev.
func (r ModelRef) Join(rev revision.ID) string {
	if rev.Class() == revision.Legacy {
		return r.Name
	}
	out := "block/" + r.Name
	if r.Namespaced {
		return namespace + out
	}
	return out
}
