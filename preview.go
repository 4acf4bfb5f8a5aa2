package bmp2c

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// DefaultPreviewZoom is the magnification used for preview PNGs.
const DefaultPreviewZoom = 12

var previewGridColor = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}

// RenderPreview draws the bitmap magnified zoom times, black squares on
// white with a light grid between pixels.
func RenderPreview(b *Bitmap, zoom int) *image.RGBA {
	if zoom < 1 {
		zoom = 1
	}
	w, h := b.Width()*zoom+1, b.Height()*zoom+1
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(dst)

	gc.SetFillColor(color.White)
	draw2dkit.Rectangle(gc, 0, 0, float64(w), float64(h))
	gc.Fill()

	gc.SetFillColor(color.Black)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if !b.At(x, y) {
				continue
			}
			draw2dkit.Rectangle(gc,
				float64(x*zoom), float64(y*zoom),
				float64((x+1)*zoom), float64((y+1)*zoom))
			gc.Fill()
		}
	}

	// Half-pixel offsets keep the one-pixel grid lines crisp.
	gc.SetStrokeColor(previewGridColor)
	gc.SetLineWidth(1)
	for x := 0; x <= b.Width(); x++ {
		gc.MoveTo(float64(x*zoom)+0.5, 0)
		gc.LineTo(float64(x*zoom)+0.5, float64(h))
	}
	for y := 0; y <= b.Height(); y++ {
		gc.MoveTo(0, float64(y*zoom)+0.5)
		gc.LineTo(float64(w), float64(y*zoom)+0.5)
	}
	gc.Stroke()

	return dst
}

// WritePreview renders the bitmap and writes it as a PNG file.
func WritePreview(path string, b *Bitmap, zoom int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, RenderPreview(b, zoom)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
