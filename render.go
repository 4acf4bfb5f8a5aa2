package bmp2c

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Version is the tool version stamped into generated headers.
const Version = "0.1.0"

// DefaultValuesPerLine is the hex dump wrap width used when
// RenderOptions leaves ValuesPerLine at zero.
const DefaultValuesPerLine = 12

const repoURL = "https://github.com/AlisonLuan/bmp2c"

// RenderOptions control the generated source text.
type RenderOptions struct {
	EmitDims      bool     // append width/height macros (or matrix macros)
	ValuesPerLine int      // hex values per line; 0 means DefaultValuesPerLine
	Mode          PackMode // describes the packing in the header; "" means PackRow
	Version       string   // tool version for the header; "" means Version
}

func (o RenderOptions) valuesPerLine() int {
	if o.ValuesPerLine <= 0 {
		return DefaultValuesPerLine
	}
	return o.ValuesPerLine
}

func (o RenderOptions) version() string {
	if o.Version == "" {
		return Version
	}
	return o.Version
}

func (o RenderOptions) mode() PackMode {
	if o.Mode == "" {
		return PackRow
	}
	return o.Mode
}

// formatBytes renders data as uppercase 0xHH values, comma separated,
// indented four spaces and wrapped at perLine values.
func formatBytes(data []byte, perLine int) string {
	items := make([]string, len(data))
	for i, b := range data {
		items[i] = fmt.Sprintf("0x%02X", b)
	}
	var lines []string
	for i := 0; i < len(items); i += perLine {
		end := i + perLine
		if end > len(items) {
			end = len(items)
		}
		lines = append(lines, "    "+strings.Join(items[i:end], ", "))
	}
	return strings.Join(lines, ",\n")
}

func headerComment(file, desc, size, version string) string {
	lines := []string{
		"/* =========================================================================",
		" *  File: " + file,
		" *  Desc: " + desc,
		" *        Scan: top-left → left-to-right, top-to-bottom. Black=1.",
		" *        Size: " + size,
		" *  Notes: Generated to align with MISRA C:2004/2008 guidelines (style/comments).",
		" *  Tool : bmp2c v" + version,
		" *  Repo : " + repoURL,
		" *  Gen  : This file is generated — do not edit by hand.",
		" *  Reminder (author): Please keep the repository link in this header when sharing/redistributing.",
		" * ========================================================================= */",
	}
	return strings.Join(lines, "\n")
}

// RenderSingle produces the complete text of a generated .c file holding
// one packed image.
func RenderSingle(symbol string, w, h int, data []byte, opts RenderOptions) string {
	var sb strings.Builder
	sb.WriteString(headerComment(
		symbol+".c",
		"Auto-generated from BMP (1-bpp). Packing: "+opts.mode().describe()+".",
		fmt.Sprintf("%dx%d px. Bytes: %d.", w, h, len(data)),
		opts.version(),
	))
	sb.WriteString("\n\n#include <stdint.h>  /* for uint8_t */\n\n/* Image data */\n")
	fmt.Fprintf(&sb, "const unsigned char %s[%d] =\n{\n", symbol, len(data))
	sb.WriteString(formatBytes(data, opts.valuesPerLine()))
	sb.WriteString("\n};\n")
	if opts.EmitDims {
		up := MacroName(symbol)
		fmt.Fprintf(&sb, "\n/* Optional (only if --emit-dims): */\n#define %s_WIDTH   %d\n#define %s_HEIGHT  %d\n", up, w, up, h)
	}
	return sb.String()
}

// RenderMatrix produces the combined .c file for a set of same-sized
// images, one row per image in the order given. Entries must not be
// empty.
func RenderMatrix(base string, entries []Result, opts RenderOptions) string {
	w, h := entries[0].Width, entries[0].Height
	bpi := BytesPerImage(w, h, opts.mode())
	var sb strings.Builder
	sb.WriteString(headerComment(
		base+"_Matrix.c",
		"Auto-generated BMP matrix. Packing: "+opts.mode().describe()+".",
		fmt.Sprintf("%dx%d px per image. Count: %d. Bytes/img: %d.", w, h, len(entries), bpi),
		opts.version(),
	))
	sb.WriteString("\n\n#include <stdint.h>\n\n")
	fmt.Fprintf(&sb, "const unsigned char %s_Matrix[%d][%d] =\n{\n", base, len(entries), bpi)
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = fmt.Sprintf("    /* name: %s */ {\n%s\n    }",
			filepath.Base(e.SourcePath), formatBytes(e.Data, opts.valuesPerLine()))
	}
	sb.WriteString(strings.Join(blocks, ",\n"))
	sb.WriteString("\n};\n")
	if opts.EmitDims {
		up := MacroName(base)
		fmt.Fprintf(&sb, "\n#define %s_COUNT %d\n#define %s_W     %d\n#define %s_H     %d\n#define %s_BPI   %d\n",
			up, len(entries), up, w, up, h, up, bpi)
	}
	return sb.String()
}
