package bmp2c

import (
	"fmt"
	"image"
)

// blackThreshold is the 8-bit luminance value below which a pixel counts
// as black. Pixels decoded from a 1-bpp BMP are always pure black or pure
// white, so the cutoff is exact for accepted inputs.
const blackThreshold = 128

// Bitmap is a 1-bit-per-pixel image. True means black.
type Bitmap struct {
	pixels [][]bool
	width  int
	height int
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// At reports whether the pixel at (x, y) is black. The origin is the
// top-left corner.
func (b *Bitmap) At(x, y int) bool {
	return b.pixels[y][x]
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%dx%d)", b.width, b.height)
}

// BitmapFromImage binarizes img at a fixed luminance threshold.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([][]bool, h)
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			row[x] = blackAt(img, bounds.Min.X+x, bounds.Min.Y+y)
		}
		pixels[y] = row
	}
	return &Bitmap{pixels: pixels, width: w, height: h}
}

// blackAt weights the channels the way the human eye does before
// comparing against the threshold.
func blackAt(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	gray := 0.21*float32(r) + 0.72*float32(g) + 0.07*float32(b)
	return gray/257.0 < blackThreshold
}
