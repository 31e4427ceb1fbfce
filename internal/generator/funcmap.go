package generator

import (
	"strings"
	"text/template"
)

// CountMacro returns the macro holding the number of entries, e.g. "IMAGES"
// for the label "image". The include guard is derived from it too.
func CountMacro(label string) string {
	return strings.ToUpper(label) + "S"
}

// SizeVar returns the name of the size variable paired with a symbol.
func SizeVar(symbol string) string {
	return symbol + "_size"
}

// GetCommonFuncMap returns the template functions shared by all emitters.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"countMacro": CountMacro,
		"sizeVar":    SizeVar,
		"Upper":      strings.ToUpper,
		"Lower":      strings.ToLower,
	}
}
