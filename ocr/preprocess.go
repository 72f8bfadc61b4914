package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned when image data cannot be decoded.
var ErrUnsupportedImage = errors.New("unsupported image data")

// Prepare decodes an image, converts it to grayscale and, if it is narrower
// than minWidth, upscales it keeping the aspect ratio. The result is PNG
// encoded. Accepted inputs are PNG, JPEG, GIF, TIFF, BMP and WebP.
func Prepare(data []byte, minWidth int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := Grayscale(src)
	if minWidth > 0 && img.Bounds().Dx() < minWidth {
		img = Upscale(img, minWidth)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Grayscale returns img converted to 8-bit gray with its origin at (0, 0).
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Upscale resizes img to width pixels wide using Catmull-Rom resampling.
// Images already at least width wide are returned unchanged.
func Upscale(img *image.Gray, width int) *image.Gray {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dx() >= width {
		return img
	}
	height := b.Dy() * width / b.Dx()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
