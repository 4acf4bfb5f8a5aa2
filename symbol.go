package bmp2c

import (
	"regexp"
	"strings"
)

var invalidSymbolChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeSymbol coerces name into a valid C identifier: invalid
// characters become underscores and a leading digit gets an underscore
// prefix. Case is preserved.
func SanitizeSymbol(name string) string {
	if name == "" {
		return "_"
	}
	name = invalidSymbolChars.ReplaceAllString(name, "_")
	if c := name[0]; c >= '0' && c <= '9' {
		name = "_" + name
	}
	return name
}

// MacroName is the upper-cased macro spelling of a symbol.
func MacroName(symbol string) string {
	return strings.ToUpper(invalidSymbolChars.ReplaceAllString(symbol, "_"))
}
