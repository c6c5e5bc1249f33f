// Package assetindex walks a resource pack directory and lists every asset
// that may end up in a ported archive.
//
// Only the pack manifest, the pack icon and the assets tree are indexed.
// Junk files left behind by file managers are filtered with doublestar
// patterns so users can extend the list from configuration.
package assetindex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	ManifestName = "pack.mcmeta"
	IconName     = "pack.png"
	AssetsDir    = "assets"
)

// DefaultExclude lists junk files that never belong in an archive.
var DefaultExclude = []string{"**/Thumbs.db", "**/.DS_Store", "**/desktop.ini"}

// Options tunes Index.
type Options struct {
	// Exclude holds doublestar patterns matched against the pack-relative
	// slash path. A nil slice selects DefaultExclude.
	Exclude []string
}

// Index walks root and returns every indexed path in sorted order.
func Index(root string, opts Options) ([]Path, error) {
	patterns := opts.Exclude
	if patterns == nil {
		patterns = DefaultExclude
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("assetindex: invalid exclude pattern %q", pattern)
		}
	}

	var out []Path
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !strings.Contains(rel, "/") && !topLevelAllowed(path, rel, d) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if matchesAny(patterns, rel) {
			return nil
		}
		out = append(out, Path(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assetindex: walk %s: %w", root, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// topLevelAllowed admits the assets tree plus the manifest and icon, with or
// without an override suffix. Symlinked top-level files count when they point
// at a regular file.
func topLevelAllowed(path, name string, d fs.DirEntry) bool {
	if name == AssetsDir {
		return d.IsDir()
	}
	switch FoldKey(Path(name).Logical()) {
	case ManifestName, IconName:
	default:
		return false
	}
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
