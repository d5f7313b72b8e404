package geometry

import "image"

// Handle identifies the control point of a selection rectangle under the
// pointer. Corners and edge midpoints resize, HandleMove drags the whole
// rectangle, HandleNone means the pointer hit nothing.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
	HandleMove
)

func (h Handle) String() string {
	switch h {
	case HandleNone:
		return "none"
	case HandleTopLeft:
		return "top-left"
	case HandleTopRight:
		return "top-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomRight:
		return "bottom-right"
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	case HandleMove:
		return "move"
	default:
		return "unknown"
	}
}

// IsCorner reports whether h is one of the four corner handles.
func (h Handle) IsCorner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight:
		return true
	}
	return false
}

// AnchorFor returns the fixed corner opposite the dragged corner/edge handle
// of r. During a resize that corner stays put while the pointer defines the
// opposite one. For edge handles the anchor is the opposite edge's
// corresponding corner so the untouched axis passes through unchanged.
func (h Handle) AnchorFor(r image.Rectangle) image.Point {
	r = r.Canon()
	switch h {
	case HandleTopLeft:
		return r.Max
	case HandleTopRight:
		return image.Pt(r.Min.X, r.Max.Y)
	case HandleBottomLeft:
		return image.Pt(r.Max.X, r.Min.Y)
	case HandleBottomRight:
		return r.Min
	case HandleTop, HandleLeft:
		return r.Max
	case HandleBottom, HandleRight:
		return r.Min
	}
	return r.Min
}

// HitTestHandle returns the handle of r containing p within radius. Corners
// take priority over edge midpoints on overlap; a point inside the body but
// on no handle yields HandleMove. A degenerate (zero-area) rectangle always
// yields HandleNone so a fresh drag starts instead of a resize.
func HitTestHandle(r image.Rectangle, p image.Point, radius int) Handle {
	r = r.Canon()
	if r.Dx() == 0 || r.Dy() == 0 {
		return HandleNone
	}
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	type candidate struct {
		h  Handle
		pt image.Point
	}
	// Corner candidates first so they win on overlap.
	candidates := []candidate{
		{HandleTopLeft, r.Min},
		{HandleTopRight, image.Pt(r.Max.X, r.Min.Y)},
		{HandleBottomLeft, image.Pt(r.Min.X, r.Max.Y)},
		{HandleBottomRight, r.Max},
		{HandleTop, image.Pt(cx, r.Min.Y)},
		{HandleBottom, image.Pt(cx, r.Max.Y)},
		{HandleLeft, image.Pt(r.Min.X, cy)},
		{HandleRight, image.Pt(r.Max.X, cy)},
	}
	for _, c := range candidates {
		if abs(p.X-c.pt.X) <= radius && abs(p.Y-c.pt.Y) <= radius {
			return c.h
		}
	}
	if p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y {
		return HandleMove
	}
	return HandleNone
}
