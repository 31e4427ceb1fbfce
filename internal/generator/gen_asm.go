package generator

// RenderAssembly renders the data section. Each entry becomes a global,
// 8-byte aligned symbol that pulls its bytes in with .incbin.
func RenderAssembly(b *Bundle) ([]byte, error) {
	return executeTemplate("data.s.tmpl", newTemplateData(b), GetCommonFuncMap())
}
