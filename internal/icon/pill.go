package icon

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// Size is the edge length of the generated icon in pixels.
const Size = 256

var (
	background = color.RGBA{0x4C, 0xAF, 0x50, 0xFF} // #4CAF50
	foreground = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// PillPainter draws a white capsule on a green square.
type PillPainter struct{}

// Paint encodes the icon as PNG.
func (PillPainter) Paint(w io.Writer) error {
	return png.Encode(w, drawPill())
}

func drawPill() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	// Capsule: a bar with round caps, split down the middle.
	const (
		cy     = Size / 2
		radius = 36
		left   = 70
		right  = Size - 70
	)
	for y := cy - radius; y <= cy+radius; y++ {
		for x := left - radius; x <= right+radius; x++ {
			if inCapsule(x, y, left, right, cy, radius) {
				img.Set(x, y, foreground)
			}
		}
	}
	for y := cy - radius; y <= cy+radius; y++ {
		for x := Size/2 - 2; x <= Size/2+2; x++ {
			if inCapsule(x, y, left, right, cy, radius-4) {
				img.Set(x, y, background)
			}
		}
	}
	return img
}

func inCapsule(x, y, left, right, cy, r int) bool {
	dy := y - cy
	if x >= left && x <= right {
		return dy*dy <= r*r
	}
	cx := left
	if x > right {
		cx = right
	}
	dx := x - cx
	return dx*dx+dy*dy <= r*r
}
