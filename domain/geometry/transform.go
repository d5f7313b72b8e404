package geometry

import "image"

// Transform maps between display (preview) pixel coordinates and native
// source pixel coordinates. It is an immutable value: when the display size
// or the source resolution changes, compute a fresh Transform instead of
// mutating one in place.
type Transform struct {
	ScaleX  float64
	ScaleY  float64
	OffsetX int // letterbox offset in display space
	OffsetY int
	SrcW    int
	SrcH    int
}

// FitTransform computes the transform for a source of srcW x srcH rendered
// into a dispW x dispH canvas with aspect-preserving scaling and centered
// letterboxing. Degenerate inputs yield the identity transform.
func FitTransform(srcW, srcH, dispW, dispH int) Transform {
	if srcW <= 0 || srcH <= 0 || dispW <= 0 || dispH <= 0 {
		return Transform{ScaleX: 1, ScaleY: 1, SrcW: srcW, SrcH: srcH}
	}
	ratioW := float64(dispW) / float64(srcW)
	ratioH := float64(dispH) / float64(srcH)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}
	scaledW := int(float64(srcW)*ratio + 0.5)
	scaledH := int(float64(srcH)*ratio + 0.5)
	return Transform{
		ScaleX:  ratio,
		ScaleY:  ratio,
		OffsetX: (dispW - scaledW) / 2,
		OffsetY: (dispH - scaledH) / 2,
		SrcW:    srcW,
		SrcH:    srcH,
	}
}

// ToSource inverse-maps a display-space rectangle into source pixel
// coordinates. The result is clamped to [0,SrcW]x[0,SrcH].
func (t Transform) ToSource(r image.Rectangle) image.Rectangle {
	r = r.Canon()
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	out := image.Rect(
		int(float64(r.Min.X-t.OffsetX)/sx+0.5),
		int(float64(r.Min.Y-t.OffsetY)/sy+0.5),
		int(float64(r.Max.X-t.OffsetX)/sx+0.5),
		int(float64(r.Max.Y-t.OffsetY)/sy+0.5),
	)
	return out.Intersect(image.Rect(0, 0, t.SrcW, t.SrcH))
}

// ToDisplay forward-maps a source-space rectangle into display coordinates.
// Used only for rendering the overlay.
func (t Transform) ToDisplay(r image.Rectangle) image.Rectangle {
	r = r.Canon()
	return image.Rect(
		int(float64(r.Min.X)*t.ScaleX+0.5)+t.OffsetX,
		int(float64(r.Min.Y)*t.ScaleY+0.5)+t.OffsetY,
		int(float64(r.Max.X)*t.ScaleX+0.5)+t.OffsetX,
		int(float64(r.Max.Y)*t.ScaleY+0.5)+t.OffsetY,
	)
}

// DisplayBounds returns the letterboxed area of the display canvas the
// source maps onto, i.e. the valid region for selection input.
func (t Transform) DisplayBounds() image.Rectangle {
	return t.ToDisplay(image.Rect(0, 0, t.SrcW, t.SrcH))
}
