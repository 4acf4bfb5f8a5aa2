package bmp2c

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DrawAction selects what a draw edit does to its pixel.
type DrawAction string

const (
	DrawSet   DrawAction = "set"   // paint the pixel black
	DrawClear DrawAction = "clear" // paint the pixel white
)

// Draw is a single-pixel edit.
type Draw struct {
	X, Y   int
	Action DrawAction
}

// ParseDraw parses the command line draw form "x,y,set|clear".
func ParseDraw(s string) (Draw, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Draw{}, fmt.Errorf("invalid draw %q, expected \"x,y,set|clear\"", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return Draw{}, fmt.Errorf("invalid draw %q, expected \"x,y,set|clear\"", s)
	}
	action := DrawAction(strings.ToLower(strings.TrimSpace(parts[2])))
	if action != DrawSet && action != DrawClear {
		return Draw{}, fmt.Errorf("invalid draw action %q", parts[2])
	}
	return Draw{X: x, Y: y, Action: action}, nil
}

// Edits is the pre-packing edit pipeline. Steps always apply in a fixed
// order: fit, invert, flip-h, flip-v, rotate, trim, pad, draw. The zero
// value applies nothing.
type Edits struct {
	FitWidth  int // scale down to fit this box, 0 = no scaling
	FitHeight int
	Invert    bool
	FlipH     bool
	FlipV     bool
	Rotate    int // clockwise degrees: 0, 90, 180 or 270
	Trim      bool
	PadLeft   int // white padding per side, in pixels
	PadRight  int
	PadTop    int
	PadBottom int
	Draws     []Draw
}

func (e Edits) validate() error {
	switch e.Rotate {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("bmp2c: rotate must be one of 90, 180, 270")
	}
	if e.PadLeft < 0 || e.PadRight < 0 || e.PadTop < 0 || e.PadBottom < 0 {
		return fmt.Errorf("bmp2c: pad values must be >= 0")
	}
	if e.FitWidth < 0 || e.FitHeight < 0 || (e.FitWidth == 0) != (e.FitHeight == 0) {
		return fmt.Errorf("bmp2c: fit needs both a width and a height")
	}
	return nil
}

// Apply runs the pipeline on a black-and-white image. Every step maps
// pure black and pure white to pure black and pure white, so editing
// before binarization yields the same bits as editing the bit matrix.
func (e Edits) Apply(img image.Image) (image.Image, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	if e.FitWidth > 0 {
		img = resize.Thumbnail(uint(e.FitWidth), uint(e.FitHeight), img, resize.NearestNeighbor)
	}
	if e.Invert {
		img = imaging.Invert(img)
	}
	if e.FlipH {
		img = imaging.FlipH(img)
	}
	if e.FlipV {
		img = imaging.FlipV(img)
	}
	switch e.Rotate {
	case 90:
		img = imaging.Rotate270(img) // imaging rotates counter-clockwise
	case 180:
		img = imaging.Rotate180(img)
	case 270:
		img = imaging.Rotate90(img)
	}
	if e.Trim {
		img = trim(img)
	}
	if e.PadLeft > 0 || e.PadRight > 0 || e.PadTop > 0 || e.PadBottom > 0 {
		img = pad(img, e.PadLeft, e.PadRight, e.PadTop, e.PadBottom)
	}
	if len(e.Draws) > 0 {
		var err error
		if img, err = applyDraws(img, e.Draws); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// trim crops to the bounding box of black pixels. An all-white image is
// returned unchanged rather than collapsing to nothing.
func trim(img image.Image) image.Image {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !blackAt(img, x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < bounds.Min.X {
		return img
	}
	return imaging.Crop(img, image.Rect(minX, minY, maxX+1, maxY+1))
}

func pad(img image.Image, left, right, top, bottom int) image.Image {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx()+left+right, bounds.Dy()+top+bottom, color.White)
	return imaging.Paste(canvas, img, image.Pt(left, top))
}

// applyDraws is the only step that needs mutable pixels, so it clones
// once and writes into the clone.
func applyDraws(img image.Image, draws []Draw) (image.Image, error) {
	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	for _, d := range draws {
		if d.X < 0 || d.X >= w || d.Y < 0 || d.Y >= h {
			return nil, fmt.Errorf("bmp2c: draw out of bounds: (%d,%d) for size %dx%d", d.X, d.Y, w, h)
		}
		if d.Action == DrawSet {
			out.Set(d.X, d.Y, color.Black)
		} else {
			out.Set(d.X, d.Y, color.White)
		}
	}
	return out, nil
}
