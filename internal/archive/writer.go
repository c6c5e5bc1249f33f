// Package archive assembles the zip file for one target revision.
//
// Entries are written to "<path>.tmp" and the file is renamed into place only
// when Close succeeds, so a failed build never leaves a half-written archive
// under the final name. Writing the same entry name twice is not an error: the
// second write is dropped and reported as a complaint.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/klauspost/compress/flate"

	"mcpackr/internal/complaint"
)

// DefaultModTime stamps every entry so identical inputs give identical archives.
var DefaultModTime = time.Date(2018, time.July, 18, 0, 0, 0, 0, time.UTC)

// Options tunes a Writer.
type Options struct {
	// Level is the flate compression level. Zero selects flate.DefaultCompression.
	Level int
	// ModTime overrides DefaultModTime.
	ModTime time.Time
}

// Writer accumulates (name, bytes) entries into a zip archive.
type Writer struct {
	path       string
	tmp        string
	file       *os.File
	zw         *zip.Writer
	complaints *complaint.Set
	modTime    time.Time
	names      map[string]struct{}
	order      []string
	closed     bool
}

// Create opens a new archive that will be published at path on Close.
// complaints receives duplicate entry reports and may be nil.
func Create(path string, complaints *complaint.Set, opts Options) (*Writer, error) {
	level := opts.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return nil, fmt.Errorf("archive: invalid compression level %d", level)
	}
	modTime := opts.ModTime
	if modTime.IsZero() {
		modTime = DefaultModTime
	}

	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("archive: create %s: %w", tmp, err)
	}
	zw := zip.NewWriter(file)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})
	return &Writer{
		path:       path,
		tmp:        tmp,
		file:       file,
		zw:         zw,
		complaints: complaints,
		modTime:    modTime,
		names:      make(map[string]struct{}),
	}, nil
}

// Path returns the final archive location.
func (w *Writer) Path() string { return w.path }

// Add writes one entry. It reports false, without error, when name was
// already written to this archive.
func (w *Writer) Add(name string, data []byte) (bool, error) {
	if w.closed {
		return false, fmt.Errorf("archive: add %s: writer closed", name)
	}
	if _, dup := w.names[name]; dup {
		if w.complaints != nil {
			w.complaints.Addf("Tried to pack %s multiple times. Is this an inter-compatible resource pack?", name)
		}
		return false, nil
	}
	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: w.modTime,
	}
	entry, err := w.zw.CreateHeader(hdr)
	if err != nil {
		return false, fmt.Errorf("archive: add %s: %w", name, err)
	}
	if _, err := entry.Write(data); err != nil {
		return false, fmt.Errorf("archive: write %s: %w", name, err)
	}
	w.names[name] = struct{}{}
	w.order = append(w.order, name)
	return true, nil
}

// Has reports whether name was written.
func (w *Writer) Has(name string) bool {
	_, ok := w.names[name]
	return ok
}

// Len returns the number of entries written.
func (w *Writer) Len() int { return len(w.order) }

// Names returns the entry names in sorted order.
func (w *Writer) Names() []string {
	out := append([]string(nil), w.order...)
	sort.Strings(out)
	return out
}

// Close finalizes the archive and moves it to its final path.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.zw.Close(); err != nil {
		w.discard()
		return fmt.Errorf("archive: finalize %s: %w", w.path, err)
	}
	if err := w.file.Sync(); err != nil {
		w.discard()
		return fmt.Errorf("archive: sync %s: %w", w.tmp, err)
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("archive: close %s: %w", w.tmp, err)
	}
	if err := os.Rename(w.tmp, w.path); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("archive: publish %s: %w", w.path, err)
	}
	return nil
}

// Abort discards the archive. It is a no-op after Close.
func (w *Writer) Abort() {
	if w.closed {
		return
	}
	w.closed = true
	w.discard()
}

func (w *Writer) discard() {
	_ = w.file.Close()
	_ = os.Remove(w.tmp)
}
