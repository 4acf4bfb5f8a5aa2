package bmp2c

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/sergeymakinen/go-bmp"
)

// FormatError reports input that is not a 1-bpp BMP this tool accepts.
type FormatError string

func (e FormatError) Error() string { return "bmp2c: " + string(e) }

func formatErrorf(format string, args ...any) FormatError {
	return FormatError(fmt.Sprintf(format, args...))
}

// The bits-per-pixel field sits at offset 28 of the file, except in the
// ancient 12-byte core info header where it sits at offset 24. Either
// way the first 30 bytes cover it.
const (
	bmpHeaderLen      = 30
	coreInfoHeaderLen = 12
)

func bitCount(head [bmpHeaderLen]byte) int {
	if binary.LittleEndian.Uint32(head[14:18]) == coreInfoHeaderLen {
		return int(binary.LittleEndian.Uint16(head[24:26]))
	}
	return int(binary.LittleEndian.Uint16(head[28:30]))
}

// readImage decodes a BMP file, rejecting anything that is not 1-bpp
// before the decoder runs. The depth check reads the raw header so that
// unsupported files fail the same way regardless of decoder support.
func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var head [bmpHeaderLen]byte
	if _, err := io.ReadFull(f, head[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, formatErrorf("not a BMP file: %s", filepath.Base(path))
		}
		return nil, err
	}
	if head[0] != 'B' || head[1] != 'M' {
		return nil, formatErrorf("not a BMP file: %s", filepath.Base(path))
	}
	if bpp := bitCount(head); bpp != 1 {
		return nil, formatErrorf("input is not 1-bpp (bpp=%d): %s", bpp, filepath.Base(path))
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, err := bmp.Decode(f)
	if err != nil {
		return nil, formatErrorf("decoding %s: %v", filepath.Base(path), err)
	}
	return img, nil
}

// ReadBitmap loads a 1-bpp BMP file and binarizes it (black = 1).
func ReadBitmap(path string) (*Bitmap, error) {
	img, err := readImage(path)
	if err != nil {
		return nil, err
	}
	return BitmapFromImage(img), nil
}
