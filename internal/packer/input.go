package packer

import (
	"path/filepath"
	"strings"

	"github.com/mkarray/mkarray/internal/archive"
)

// InputSpec is one source path and the names derived from it.
type InputSpec struct {
	// Path is the source path exactly as given.
	Path string
	// Base is the final path element.
	Base string
	// PlainName is Base without its extension.
	PlainName string
	// Symbol is Base with every '.' replaced by '_'.
	Symbol string
}

// NewInputSpec derives the names for the source at path.
func NewInputSpec(path string) InputSpec {
	base := filepath.Base(path)
	return InputSpec{
		Path:      path,
		Base:      base,
		PlainName: plainName(base),
		Symbol:    strings.ReplaceAll(base, ".", "_"),
	}
}

// DeflateName is the archive member holding the compressed payload.
func (s InputSpec) DeflateName() string {
	return s.Base + archive.DeflateSuffix
}

// plainName strips the last extension. Dots leading the name (".bashrc")
// do not start an extension.
func plainName(base string) string {
	i := strings.LastIndex(base, ".")
	if i <= 0 || strings.TrimLeft(base[:i], ".") == "" {
		return base
	}
	return base[:i]
}
