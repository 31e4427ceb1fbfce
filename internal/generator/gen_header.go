package generator

// RenderHeader renders the C header declaring the record type, the entry
// array and one pointer/size pair per entry.
func RenderHeader(b *Bundle) ([]byte, error) {
	return executeTemplate("header.h.tmpl", newTemplateData(b), GetCommonFuncMap())
}
