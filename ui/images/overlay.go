package images

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	outlineColor      = color.RGBA{255, 255, 255, 255}
	cornerHandleColor = color.RGBA{40, 40, 40, 255}
	edgeHandleColor   = color.RGBA{60, 60, 60, 255}
)

// DrawSelection returns a copy of frame with the selection rectangle
// outlined in white and its eight grab handles drawn as small filled
// squares, corners darker than edge midpoints. A degenerate rect yields
// an unmarked copy.
func DrawSelection(frame *image.RGBA, rect image.Rectangle, handleSize int) *image.RGBA {
	if frame == nil {
		return nil
	}
	b := frame.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), frame, b.Min, draw.Src)

	r := rect.Canon()
	if r.Dx() == 0 || r.Dy() == 0 {
		return out
	}

	drawOutline(out, r)

	if handleSize < 2 {
		handleSize = 2
	}
	half := handleSize / 2
	x1, y1, x2, y2 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	mx, my := (x1+x2)/2, (y1+y2)/2

	for _, p := range []image.Point{{x1, y1}, {x2, y1}, {x1, y2}, {x2, y2}} {
		fillSquare(out, p, half, cornerHandleColor)
	}
	for _, p := range []image.Point{{mx, y1}, {mx, y2}, {x1, my}, {x2, my}} {
		fillSquare(out, p, half, edgeHandleColor)
	}
	return out
}

// drawOutline traces a one-pixel border along r, clipped to img.
func drawOutline(img *image.RGBA, r image.Rectangle) {
	clipped := r.Intersect(img.Bounds())
	if clipped.Empty() {
		return
	}
	for x := clipped.Min.X; x < clipped.Max.X; x++ {
		if r.Min.Y >= img.Bounds().Min.Y && r.Min.Y < img.Bounds().Max.Y {
			img.SetRGBA(x, r.Min.Y, outlineColor)
		}
		if r.Max.Y-1 >= img.Bounds().Min.Y && r.Max.Y-1 < img.Bounds().Max.Y {
			img.SetRGBA(x, r.Max.Y-1, outlineColor)
		}
	}
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		if r.Min.X >= img.Bounds().Min.X && r.Min.X < img.Bounds().Max.X {
			img.SetRGBA(r.Min.X, y, outlineColor)
		}
		if r.Max.X-1 >= img.Bounds().Min.X && r.Max.X-1 < img.Bounds().Max.X {
			img.SetRGBA(r.Max.X-1, y, outlineColor)
		}
	}
}

func fillSquare(img *image.RGBA, center image.Point, half int, c color.RGBA) {
	sq := image.Rect(center.X-half, center.Y-half, center.X+half+1, center.Y+half+1)
	draw.Draw(img, sq.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}
