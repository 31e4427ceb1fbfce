package generator

// RenderDescriptor renders the C source defining the entry array and the
// size variables.
func RenderDescriptor(b *Bundle) ([]byte, error) {
	return executeTemplate("desc.c.tmpl", newTemplateData(b), GetCommonFuncMap())
}
