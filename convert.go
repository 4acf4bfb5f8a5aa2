/*
Package bmp2c turns 1-bpp BMP images into embeddable C source. Each
image becomes a packed byte array (row-major or SSD1306-style page
layout, LSB-first, black=1) rendered as a const unsigned char
declaration, and a folder of images can additionally be combined into a
single two-dimensional matrix array.
*/
package bmp2c

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SortKind orders folder images by filename stem.
type SortKind string

const (
	SortAlpha   SortKind = "alpha"   // case-insensitive lexicographic
	SortNatural SortKind = "natural" // numeric-aware: img2 before img10
)

func (k SortKind) valid() bool { return k == SortAlpha || k == SortNatural }

// Options configure a conversion. The zero value packs row-major with
// twelve hex values per line, no dims macros, no edits and no logging.
type Options struct {
	OutDir           string   // destination directory; "" writes next to the input
	Symbol           string   // C symbol override for single conversions
	MatrixBase       string   // matrix basename override for folder conversions
	EmitDims         bool     // append width/height macros to generated files
	ValuesPerLine    int      // hex values per line; 0 means DefaultValuesPerLine
	Mode             PackMode // "" means PackRow
	Sort             SortKind // folder ordering; "" means SortAlpha
	FailOnMixedSizes bool     // folder: error out instead of one matrix per size
	Edits            Edits
	PreviewPath      string       // optional zoomed PNG preview (single conversions)
	Logger           *slog.Logger // progress logging; nil is quiet
}

func (o Options) mode() PackMode {
	if o.Mode == "" {
		return PackRow
	}
	return o.Mode
}

func (o Options) sortKind() SortKind {
	if o.Sort == "" {
		return SortAlpha
	}
	return o.Sort
}

func (o Options) render() RenderOptions {
	return RenderOptions{EmitDims: o.EmitDims, ValuesPerLine: o.ValuesPerLine, Mode: o.mode()}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}

// Result describes one converted image.
type Result struct {
	Symbol     string
	Width      int
	Height     int
	Data       []byte
	SourcePath string
}

// Convert reads a single 1-bpp BMP, applies the configured edits, packs
// the pixels and writes {symbol}.c next to the input or into
// Options.OutDir. Nothing is written unless the whole conversion
// succeeds.
func Convert(inputPath string, opts Options) (Result, error) {
	if !opts.mode().valid() {
		return Result{}, fmt.Errorf("bmp2c: unknown pack mode: %q", opts.Mode)
	}
	bm, err := loadEdited(inputPath, opts.Edits)
	if err != nil {
		return Result{}, err
	}

	symbol := opts.Symbol
	if symbol == "" {
		symbol = stem(inputPath)
	}
	symbol = SanitizeSymbol(symbol)

	data := Pack(bm, opts.mode())
	content := RenderSingle(symbol, bm.Width(), bm.Height(), data, opts.render())

	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	}
	outPath := filepath.Join(outDir, symbol+".c")
	if err := writeText(outPath, content); err != nil {
		return Result{}, err
	}
	opts.logger().Info("Wrote output", "path", outPath, "bytes", len(data))

	if opts.PreviewPath != "" {
		if err := WritePreview(opts.PreviewPath, bm, DefaultPreviewZoom); err != nil {
			return Result{}, err
		}
		opts.logger().Info("Wrote preview", "path", opts.PreviewPath)
	}

	return Result{Symbol: symbol, Width: bm.Width(), Height: bm.Height(), Data: data, SourcePath: inputPath}, nil
}

// ConvertFolder converts every *.bmp in dir the way Convert does, then
// writes a combined matrix file per image size, or a single matrix when
// all images agree on size. It returns the matrix paths written.
func ConvertFolder(dir string, opts Options) ([]string, error) {
	if !opts.mode().valid() {
		return nil, fmt.Errorf("bmp2c: unknown pack mode: %q", opts.Mode)
	}
	if !opts.sortKind().valid() {
		return nil, fmt.Errorf("bmp2c: unknown sort order: %q", opts.Sort)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bmp2c: not a folder: %s", dir)
	}

	paths, err := listBMPs(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("bmp2c: no .bmp files found in %s", dir)
	}
	sortPaths(paths, opts.sortKind())

	outDir := opts.OutDir
	if outDir == "" {
		outDir = dir
	}

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		fileOpts := opts
		fileOpts.OutDir = outDir
		fileOpts.Symbol = "" // per-file symbols come from the stem
		fileOpts.PreviewPath = ""
		res, err := Convert(p, fileOpts)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	groups := groupBySize(results)
	if len(groups) > 1 && opts.FailOnMixedSizes {
		return nil, fmt.Errorf("bmp2c: mixed image sizes after edits; drop --fail-on-mixed-sizes to emit one matrix per size")
	}

	base := opts.MatrixBase
	if base == "" {
		if abs, err := filepath.Abs(dir); err == nil {
			base = filepath.Base(abs)
		} else {
			base = filepath.Base(dir)
		}
	}
	base = SanitizeSymbol(base)

	var written []string
	for _, g := range groups {
		name := base
		if len(groups) > 1 {
			name = fmt.Sprintf("%s_%dx%d", base, g.w, g.h)
		}
		content := RenderMatrix(name, g.entries, opts.render())
		outPath := filepath.Join(outDir, name+"_Matrix.c")
		if err := writeText(outPath, content); err != nil {
			return nil, err
		}
		opts.logger().Info("Wrote matrix", "path", outPath,
			"size", fmt.Sprintf("%dx%d", g.w, g.h), "images", len(g.entries))
		written = append(written, outPath)
	}
	return written, nil
}

func listBMPs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.bmp"))
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
			paths = append(paths, m)
		}
	}
	return paths, nil
}

func loadEdited(path string, edits Edits) (*Bitmap, error) {
	img, err := readImage(path)
	if err != nil {
		return nil, err
	}
	img, err = edits.Apply(img)
	if err != nil {
		return nil, err
	}
	bm := BitmapFromImage(img)
	if bm.Width() == 0 || bm.Height() == 0 {
		return nil, formatErrorf("empty bitmap: %s", filepath.Base(path))
	}
	return bm, nil
}

// writeText creates the parent directory if needed and writes the whole
// rendered file in one call, so a failed conversion never leaves a
// partial output behind.
func writeText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type sizeGroup struct {
	w, h    int
	entries []Result
}

// groupBySize buckets results by dimensions, keeping the conversion
// order within each bucket. Buckets come back sorted by width, then
// height.
func groupBySize(results []Result) []sizeGroup {
	var groups []sizeGroup
	index := map[[2]int]int{}
	for _, r := range results {
		key := [2]int{r.Width, r.Height}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, sizeGroup{w: r.Width, h: r.Height})
		}
		groups[i].entries = append(groups[i].entries, r)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].w != groups[j].w {
			return groups[i].w < groups[j].w
		}
		return groups[i].h < groups[j].h
	})
	return groups
}

// sortPaths orders files by their name stem. Alpha ordering is
// case-insensitive with the raw stem as tie-break, so "bar" sorts before
// "Foo" before "foo". Natural ordering additionally compares runs of
// digits by numeric value, putting img2 before img10.
func sortPaths(paths []string, kind SortKind) {
	sort.SliceStable(paths, func(i, j int) bool {
		return stemLess(stem(paths[i]), stem(paths[j]), kind)
	})
}

func stemLess(a, b string, kind SortKind) bool {
	if kind == SortNatural {
		if c := naturalCompare(a, b); c != 0 {
			return c < 0
		}
		return a < b
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// naturalCompare walks both stems chunk by chunk, where a chunk is a
// maximal run of digits or non-digits. Digit runs compare by numeric
// value, text runs case-insensitively, and a stem that opens with a
// digit run sorts before one that opens with text.
func naturalCompare(a, b string) int {
	for a != "" || b != "" {
		if a == "" {
			return -1
		}
		if b == "" {
			return 1
		}
		ca, restA := nextChunk(a)
		cb, restB := nextChunk(b)
		aDigits, bDigits := isDigit(ca[0]), isDigit(cb[0])
		switch {
		case aDigits && !bDigits:
			return -1
		case !aDigits && bDigits:
			return 1
		case aDigits:
			if c := compareNumeric(ca, cb); c != 0 {
				return c
			}
		default:
			la, lb := strings.ToLower(ca), strings.ToLower(cb)
			if la != lb {
				if la < lb {
					return -1
				}
				return 1
			}
		}
		a, b = restA, restB
	}
	return 0
}

func nextChunk(s string) (chunk, rest string) {
	digits := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != digits {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// compareNumeric compares two digit runs by value without overflowing on
// absurdly long runs: after stripping leading zeros, longer means
// larger.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
