package generator

import (
	"fmt"
	"log/slog"
)

// Output holds the three rendered sources of one bundle.
type Output struct {
	Header     []byte
	Assembly   []byte
	Descriptor []byte
}

// Generate renders the header, assembly and descriptor bodies for b.
//
// Parameters:
//   - b: The bundle to render. Entries must already be in input order.
//
// Returns:
//   - *Output: The rendered bodies.
//   - error: An error if any template fails to parse or execute.
func Generate(b *Bundle) (*Output, error) {
	header, err := RenderHeader(b)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", b.HeaderName(), err)
	}
	asm, err := RenderAssembly(b)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", b.AssemblyName(), err)
	}
	desc, err := RenderDescriptor(b)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", b.DescriptorName(), err)
	}

	slog.Debug("rendered sources",
		"label", b.Label,
		"entries", len(b.Entries),
		"header_bytes", len(header),
		"assembly_bytes", len(asm),
		"descriptor_bytes", len(desc))

	return &Output{Header: header, Assembly: asm, Descriptor: desc}, nil
}
