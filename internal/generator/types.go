package generator

// Tool is the generator name written into every banner.
const Tool = "mkarray"

// Entry describes one embedded input as it appears in the generated sources.
// Entries are built once by the packer and passed around by value.
type Entry struct {
	// Symbol is the linkable identifier the blob is exported under.
	Symbol string
	// Name is the source's base name without its extension.
	Name string
	// Include is the path handed to the assembler's .incbin directive.
	Include string
	// Size is the number of bytes actually stored (post-compression).
	Size int
	// Inflated is the length of the original file.
	Inflated int
	// Compressed reports whether the stored bytes are a raw DEFLATE stream.
	Compressed bool
}

// Bundle carries everything the emitters need to render one output set.
type Bundle struct {
	// Destination is the base name shared by all generated files.
	Destination string
	// Label is the stem of the record type, entry array and count macro.
	Label string
	// Prolog is copied verbatim to the top of the assembly body.
	Prolog string
	// Section is the section directive line of the assembly body.
	Section string
	// Entries are kept in input order.
	Entries []Entry
}

// HeaderName is the archive member name of the generated header.
func (b *Bundle) HeaderName() string { return b.Destination + ".h" }

// AssemblyName is the archive member name of the generated assembly.
func (b *Bundle) AssemblyName() string { return b.Destination + ".s" }

// DescriptorName is the archive member name of the generated descriptor source.
func (b *Bundle) DescriptorName() string { return b.Destination + "_desc.c" }

// templateData is the value every template executes against.
// Generator feeds the shared banner partial.
type templateData struct {
	*Bundle
	Generator string
}

func newTemplateData(b *Bundle) templateData {
	return templateData{Bundle: b, Generator: Tool}
}
