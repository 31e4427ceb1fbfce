package archive

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// DeflateSuffix marks members holding a raw DEFLATE stream.
const DeflateSuffix = ".deflate"

// Member summarizes one archive member.
type Member struct {
	Name     string
	Method   uint16
	Size     uint64
	CRC32    uint32
	Modified time.Time
	// Inflated is the decompressed length of a .deflate member, or -1.
	Inflated int64
	// Err is set when a .deflate member fails to inflate.
	Err error
}

// Compressed reports whether the member carries a raw DEFLATE payload.
func (m Member) Compressed() bool {
	return strings.HasSuffix(m.Name, DeflateSuffix)
}

// Inspect lists the members of the archive at path in stored order.
// Every .deflate member is inflated to verify it and measure its length; a
// member that fails to inflate is reported through Member.Err rather than
// aborting the listing.
func Inspect(path string) ([]Member, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	members := make([]Member, 0, len(r.File))
	for _, f := range r.File {
		m := Member{
			Name:     f.Name,
			Method:   f.Method,
			Size:     f.UncompressedSize64,
			CRC32:    f.CRC32,
			Modified: f.Modified,
			Inflated: -1,
		}
		if m.Compressed() {
			if n, err := inflatedLength(f); err != nil {
				m.Err = err
			} else {
				m.Inflated = n
			}
		}
		members = append(members, m)
	}
	return members, nil
}

// ReadMember returns the stored bytes of the named member.
func ReadMember(path, name string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("member %s not found in %s", name, path)
}

// Inflate decompresses a raw DEFLATE stream.
func Inflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return out, nil
}

func inflatedLength(f *zip.File) (int64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	fr := flate.NewReader(rc)
	defer fr.Close()
	n, err := io.Copy(io.Discard, fr)
	if err != nil {
		return 0, fmt.Errorf("inflate: %w", err)
	}
	return n, nil
}
