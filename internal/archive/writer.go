package archive

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
)

// Epoch is stamped on every member so that identical inputs always produce
// identical archives. It is the earliest time a zip header can express.
var Epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Writer appends stored (uncompressed) members to a zip stream.
type Writer struct {
	zw    *zip.Writer
	names map[string]bool
	order []string
}

// NewWriter returns a Writer emitting a zip stream to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		zw:    zip.NewWriter(w),
		names: make(map[string]bool),
	}
}

// Add stores data under name. Names must be unique within an archive.
func (w *Writer) Add(name string, data []byte) error {
	if w.names[name] {
		return fmt.Errorf("duplicate archive member %q", name)
	}

	fh := &zip.FileHeader{
		Name:     name,
		Method:   zip.Store,
		Modified: Epoch,
	}
	fh.SetMode(0644)

	mw, err := w.zw.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("create member %s: %w", name, err)
	}
	if _, err := mw.Write(data); err != nil {
		return fmt.Errorf("write member %s: %w", name, err)
	}

	w.names[name] = true
	w.order = append(w.order, name)
	slog.Debug("archive member written", "name", name, "bytes", len(data))
	return nil
}

// Members returns the member names in the order they were added.
func (w *Writer) Members() []string {
	return append([]string(nil), w.order...)
}

// Close writes the central directory. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}

// File is a Writer backed by a temporary file that is renamed onto its
// destination by Commit. Until then the destination is left untouched.
type File struct {
	*Writer
	path string
	tmp  *os.File
	done bool
}

// Create starts a new archive destined for path.
// The temporary file lives in the same directory so the final rename stays on
// one filesystem.
//
// Returns:
//   - *File: The archive file; callers must Commit or Abort it.
//   - error: An error if the temporary file cannot be created.
func Create(path string) (*File, error) {
	dir := filepath.Dir(path)
	tmpName := filepath.Join(dir, fmt.Sprintf(".%s.%s.part", filepath.Base(path), uuid.NewString()))

	tmp, err := os.OpenFile(tmpName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	return &File{
		Writer: NewWriter(tmp),
		path:   path,
		tmp:    tmp,
	}, nil
}

// Path is the final destination of the archive.
func (f *File) Path() string { return f.path }

// Commit finishes the archive and moves it onto its destination.
func (f *File) Commit() error {
	if f.done {
		return fmt.Errorf("archive %s already finished", f.path)
	}
	f.done = true

	if err := f.Writer.Close(); err != nil {
		f.tmp.Close()
		os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to rename %s to %s: %w", f.tmp.Name(), f.path, err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit, so it can
// be deferred unconditionally.
func (f *File) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}
