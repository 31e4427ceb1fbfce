package packer

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
)

// Deflate compresses data at the best compression level into a raw DEFLATE
// stream. The stream carries no zlib or gzip framing, so a bare inflater can
// consume it directly.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create deflate writer: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	return buf.Bytes(), nil
}
