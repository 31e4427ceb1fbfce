package packer

import (
	"errors"

	"github.com/mkarray/mkarray/internal/config"
)

// MinArgs is the number of required positional arguments:
// DESTINATION, LABEL, AS_PROLOG and SECTION.
const MinArgs = 4

// ErrUsage reports an argument list too short to describe a run.
var ErrUsage = errors.New("insufficient arguments")

// Options fully describes one packing run.
type Options struct {
	Deflate     bool
	Destination string
	Label       string
	Prolog      string
	Section     string
	Sources     []string
}

// NewOptions builds Options from the positional arguments left after flag
// parsing: DESTINATION LABEL AS_PROLOG SECTION [SOURCE ...].
// Prolog and section are taken verbatim, including empty strings.
func NewOptions(deflate bool, args []string) (Options, error) {
	if len(args) < MinArgs {
		return Options{}, ErrUsage
	}
	return Options{
		Deflate:     deflate,
		Destination: args[0],
		Label:       args[1],
		Prolog:      args[2],
		Section:     args[3],
		Sources:     append([]string(nil), args[MinArgs:]...),
	}, nil
}

// FromManifest builds Options from a manifest, appending extra sources after
// the ones the manifest lists.
func FromManifest(m *config.Manifest, extra []string) Options {
	sources := append([]string(nil), m.Sources...)
	sources = append(sources, extra...)
	return Options{
		Deflate:     m.Deflate,
		Destination: m.Destination,
		Label:       m.Label,
		Prolog:      m.Prolog,
		Section:     m.Section,
		Sources:     sources,
	}
}

// Validate checks names that end up in generated identifiers and paths.
func (o Options) Validate() error {
	return config.Validate(&config.Manifest{
		Destination: o.Destination,
		Label:       o.Label,
		Sources:     o.Sources,
	})
}

// ArchiveName is the path of the output archive.
func (o Options) ArchiveName() string {
	return o.Destination + ".zip"
}
