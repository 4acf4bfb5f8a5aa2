package bmp2c

import "fmt"

// PackMode selects the bit layout of the packed byte sequence.
type PackMode string

const (
	// PackRow packs row-major: each row is serialized left to right into
	// ceil(w/8) bytes with the leftmost pixel in bit 0, and rows are
	// concatenated top to bottom.
	PackRow PackMode = "row"
	// PackPage packs SSD1306-style vertical pages: the height is split
	// into pages of 8 rows and each byte holds one 8-pixel column slice
	// with the topmost pixel in bit 0.
	PackPage PackMode = "page"
)

func (m PackMode) valid() bool { return m == PackRow || m == PackPage }

// describe is the packing note stamped into generated headers.
func (m PackMode) describe() string {
	if m == PackPage {
		return "Vertical pages (8px), LSB-first"
	}
	return "Row-major, LSB-first"
}

// BytesPerImage returns the packed size of a w x h bitmap.
func BytesPerImage(w, h int, mode PackMode) int {
	if mode == PackPage {
		return w * ((h + 7) / 8)
	}
	return ((w + 7) / 8) * h
}

// Pack serializes the bitmap with black pixels as 1 bits. Widths and
// heights that are not multiples of 8 leave the unused high-order bits
// of the final byte per row (or page) zero.
func Pack(b *Bitmap, mode PackMode) []byte {
	if mode == PackPage {
		return packPages(b)
	}
	return packRows(b)
}

func packRows(b *Bitmap) []byte {
	out := make([]byte, 0, BytesPerImage(b.width, b.height, PackRow))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x += 8 {
			var p byte
			for i := 0; i < 8 && x+i < b.width; i++ {
				if b.pixels[y][x+i] {
					p |= 1 << i
				}
			}
			out = append(out, p)
		}
	}
	return out
}

func packPages(b *Bitmap) []byte {
	out := make([]byte, 0, BytesPerImage(b.width, b.height, PackPage))
	for y0 := 0; y0 < b.height; y0 += 8 {
		for x := 0; x < b.width; x++ {
			var p byte
			for i := 0; i < 8 && y0+i < b.height; i++ {
				if b.pixels[y0+i][x] {
					p |= 1 << i
				}
			}
			out = append(out, p)
		}
	}
	return out
}

// Unpack rebuilds a bitmap from its packed form. It is the exact inverse
// of Pack for the same mode and dimensions.
func Unpack(data []byte, w, h int, mode PackMode) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bmp2c: unpack: invalid dimensions %dx%d", w, h)
	}
	if want := BytesPerImage(w, h, mode); len(data) != want {
		return nil, fmt.Errorf("bmp2c: unpack: got %d bytes, want %d for %dx%d %s packing", len(data), want, w, h, mode)
	}
	pixels := make([][]bool, h)
	for y := range pixels {
		pixels[y] = make([]bool, w)
	}
	if mode == PackPage {
		for y0 := 0; y0 < h; y0 += 8 {
			for x := 0; x < w; x++ {
				p := data[(y0/8)*w+x]
				for i := 0; i < 8 && y0+i < h; i++ {
					pixels[y0+i][x] = p&(1<<i) != 0
				}
			}
		}
	} else {
		stride := (w + 7) / 8
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pixels[y][x] = data[y*stride+x/8]&(1<<(x%8)) != 0
			}
		}
	}
	return &Bitmap{pixels: pixels, width: w, height: h}, nil
}
