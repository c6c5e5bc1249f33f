package testsupport

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// Pack writes a resource pack directory for tests.
type Pack struct {
	t   testing.TB
	Dir string
}

// NewPack creates <tempdir>/<name> holding a pack.mcmeta with the given
// format and description plus an empty assets/minecraft folder.
func NewPack(t testing.TB, name string, format int, description string) *Pack {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	p := &Pack{t: t, Dir: dir}
	if err := os.MkdirAll(filepath.Join(dir, "assets", "minecraft"), 0o755); err != nil {
		t.Fatalf("mkdir pack: %v", err)
	}
	desc, err := json.Marshal(description)
	if err != nil {
		t.Fatalf("encode description: %v", err)
	}
	meta := fmt.Sprintf(`{"pack":{"pack_format":%d,"description":%s}}`, format, desc)
	return p.File("pack.mcmeta", []byte(meta))
}

// File writes data at the pack-relative slash path rel.
func (p *Pack) File(rel string, data []byte) *Pack {
	p.t.Helper()

	path := filepath.Join(p.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		p.t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		p.t.Fatalf("write %s: %v", rel, err)
	}
	return p
}

// Text writes a string file.
func (p *Pack) Text(rel, content string) *Pack {
	p.t.Helper()
	return p.File(rel, []byte(content))
}

// PNG writes img encoded as PNG.
func (p *Pack) PNG(rel string, img image.Image) *Pack {
	p.t.Helper()
	return p.File(rel, EncodePNG(p.t, img))
}

// Frame returns a width×height image whose pixels depend on seed, so frames of
// an animation can be told apart after transcoding.
func Frame(width, height int, seed uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: seed, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	return img
}

// EncodePNG encodes img or fails the test.
func EncodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// DecodePNG decodes data or fails the test.
func DecodePNG(t testing.TB, data []byte) image.Image {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

// ReadZip returns every entry of the archive at path keyed by name.
func ReadZip(t testing.TB, path string) map[string][]byte {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open zip %s: %v", path, err)
	}
	defer zr.Close()

	out := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		out[f.Name] = data
	}
	return out
}
