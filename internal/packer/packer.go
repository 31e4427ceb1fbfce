package packer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mkarray/mkarray/internal/archive"
	"github.com/mkarray/mkarray/internal/generator"
	"github.com/mkarray/mkarray/internal/ui"
)

// Result describes a finished run.
type Result struct {
	// Archive is the path of the written archive.
	Archive string
	// Bundle holds the entries in input order.
	Bundle *generator.Bundle
	// Members lists the archive members in write order.
	Members []string
}

// Pack reads every source, optionally compresses it, renders the header,
// assembly and descriptor sources, and stores everything in
// <Destination>.zip. The archive only appears once it is complete.
//
// Parameters:
//   - opts: The run description. Sources are processed in order.
//
// Returns:
//   - *Result: The archive path, entries and member names.
//   - error: An error if validation, reading a source, or writing the archive fails.
func Pack(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	specs, err := resolveInputs(opts.Sources)
	if err != nil {
		return nil, err
	}

	af, err := archive.Create(opts.ArchiveName())
	if err != nil {
		return nil, err
	}
	defer af.Abort()

	b := &generator.Bundle{
		Destination: opts.Destination,
		Label:       opts.Label,
		Prolog:      opts.Prolog,
		Section:     opts.Section,
		Entries:     make([]generator.Entry, 0, len(specs)),
	}

	for _, spec := range specs {
		ui.PrintMapping(spec.Path, spec.Symbol)

		entry, payload, err := ingest(spec, opts.Deflate)
		if err != nil {
			return nil, err
		}
		if entry.Compressed {
			if err := af.Add(entry.Include, payload); err != nil {
				return nil, err
			}
		}
		b.Entries = append(b.Entries, entry)
	}

	out, err := generator.Generate(b)
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{b.HeaderName(), out.Header},
		{b.AssemblyName(), out.Assembly},
		{b.DescriptorName(), out.Descriptor},
	}
	for _, f := range files {
		if err := af.Add(f.name, f.data); err != nil {
			return nil, err
		}
	}

	if err := af.Commit(); err != nil {
		return nil, err
	}

	slog.Info("archive written", "path", af.Path(), "entries", len(b.Entries), "deflate", opts.Deflate)

	return &Result{
		Archive: af.Path(),
		Bundle:  b,
		Members: af.Members(),
	}, nil
}

// resolveInputs derives the input specs and rejects sources whose names
// would collide in the generated code.
func resolveInputs(sources []string) ([]InputSpec, error) {
	specs := make([]InputSpec, 0, len(sources))
	seen := make(map[string]string, len(sources))
	for _, src := range sources {
		spec := NewInputSpec(src)
		if prev, ok := seen[spec.Symbol]; ok {
			return nil, fmt.Errorf("sources %s and %s both map to symbol %s", prev, src, spec.Symbol)
		}
		seen[spec.Symbol] = src
		specs = append(specs, spec)
	}
	return specs, nil
}

// ingest reads one source and builds its entry. payload is the compressed
// stream when compress is set and nil otherwise.
func ingest(spec InputSpec, compress bool) (generator.Entry, []byte, error) {
	data, err := os.ReadFile(spec.Path)
	if err != nil {
		return generator.Entry{}, nil, fmt.Errorf("failed to read source: %w", err)
	}

	entry := generator.Entry{
		Symbol:   spec.Symbol,
		Name:     spec.PlainName,
		Include:  spec.Path,
		Size:     len(data),
		Inflated: len(data),
	}
	if !compress {
		slog.Debug("source ingested", "source", spec.Path, "symbol", spec.Symbol, "size", entry.Size)
		return entry, nil, nil
	}

	payload, err := Deflate(data)
	if err != nil {
		return generator.Entry{}, nil, fmt.Errorf("%s: %w", spec.Path, err)
	}
	entry.Include = spec.DeflateName()
	entry.Size = len(payload)
	entry.Compressed = true

	slog.Debug("source ingested", "source", spec.Path, "symbol", spec.Symbol, "size", entry.Size, "inflated", entry.Inflated)
	return entry, payload, nil
}
