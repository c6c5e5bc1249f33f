package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"mcpackr/internal/complaint"
)

func readEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	defer r.Close()
	out := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if !f.Modified.Equal(DefaultModTime) {
			t.Fatalf("unexpected mod time %v on %s", f.Modified, f.Name)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestDuplicateEntryIsComplaint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Pack (1.9 - 1.10.2).zip")
	complaints := complaint.NewSet()

	w, err := Create(path, complaints, Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i, data := range []string{"first", "second", "third"} {
		added, err := w.Add("assets/minecraft/textures/block/stone.png", []byte(data))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if added != (i == 0) {
			t.Fatalf("write %d added=%v", i, added)
		}
	}
	if _, err := w.Add("pack.mcmeta", []byte("{}")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if w.Len() != 2 || !w.Has("pack.mcmeta") {
		t.Fatalf("unexpected entries %v", w.Names())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("archive should not be published before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries := readEntries(t, path)
	if len(entries) != 2 || entries["assets/minecraft/textures/block/stone.png"] != "first" {
		t.Fatalf("unexpected entries %v", entries)
	}
	want := "Tried to pack assets/minecraft/textures/block/stone.png multiple times. Is this an inter-compatible resource pack?"
	if got := complaints.List(); len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected complaints %v", got)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temporary file left behind")
	}
}

func TestAbortRemovesTemporaryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zip")
	w, err := Create(path, nil, Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Add("a", []byte("b")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.Abort()
	for _, p := range []string{path, path + ".tmp"} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("%s should not exist", p)
		}
	}
	if _, err := w.Add("c", nil); err == nil {
		t.Fatal("expected error after abort")
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := Create(filepath.Join(t.TempDir(), "x.zip"), nil, Options{Level: 42}); err == nil {
		t.Fatal("expected invalid level error")
	}
}
