package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a frame down to targetSize with Catmull-Rom filtering.
// The input must be opaque; alpha is not re-normalized.
func Downsample(img *image.RGBA, targetSize int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}
