package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"mcpackr/internal/assetindex"
	"mcpackr/internal/ledger"
	"mcpackr/internal/manifest"
)

// CheckManifest verifies that packDir holds a readable pack.mcmeta declaring
// a pack_format.
func CheckManifest(packDir string) Result {
	const name = "Pack manifest"

	path := filepath.Join(packDir, assetindex.ManifestName)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Result{Name: name, Detail: "The resource pack is missing the pack.mcmeta file."}
	}
	m, err := manifest.Load(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if !m.Format.Known() {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("pack_format %d (not in catalog; treated as %s)", m.Format, m.Format.Class())}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("pack_format %d (%s)", m.Format, m.Format.Label())}
}

// CheckAssets verifies that packDir has an assets/minecraft directory.
func CheckAssets(packDir string) Result {
	const name = "Assets folder"

	path := filepath.Join(packDir, assetindex.AssetsDir, "minecraft")
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Result{Name: name, Detail: "The resource pack is missing the `assets/minecraft/` folder."}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckLedger opens the ledger database at path to confirm its schema.
func CheckLedger(ctx context.Context, path string) Result {
	const name = "Ledger"

	store, err := ledger.Open(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer store.Close()

	entries, err := store.List(ctx, 0)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d archives recorded)", path, len(entries))}
}
