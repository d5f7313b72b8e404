// Package geometry provides the pure coordinate math behind the crop
// selection: display/source mapping, rectangle clamping, square locking and
// handle hit-testing. It holds no state and performs no I/O.
package geometry

import "image"

// ClampToBounds returns r translated and, if necessary, resized so that it
// lies fully inside bounds. A rectangle larger than bounds in a dimension is
// resized to exactly that dimension; it never overflows. Idempotent.
func ClampToBounds(r, bounds image.Rectangle) image.Rectangle {
	r = r.Canon()
	bounds = bounds.Canon()
	w, h := r.Dx(), r.Dy()
	if w > bounds.Dx() {
		w = bounds.Dx()
	}
	if h > bounds.Dy() {
		h = bounds.Dy()
	}
	x, y := r.Min.X, r.Min.Y
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	if x+w > bounds.Max.X {
		x = bounds.Max.X - w
	}
	if y+h > bounds.Max.Y {
		y = bounds.Max.Y - h
	}
	return image.Rect(x, y, x+w, y+h)
}

// ApplySquareLock returns the square rectangle spanned from anchor toward
// pointer with side max(|dx|,|dy|). The signs of the drag deltas pick the
// quadrant; the anchor corner never moves. A pointer equal to the anchor
// yields a degenerate rectangle at the anchor.
func ApplySquareLock(anchor, pointer image.Point) image.Rectangle {
	dx := pointer.X - anchor.X
	dy := pointer.Y - anchor.Y
	side := abs(dx)
	if abs(dy) > side {
		side = abs(dy)
	}
	ex := anchor.X + sign(dx)*side
	ey := anchor.Y + sign(dy)*side
	return image.Rect(anchor.X, anchor.Y, ex, ey).Canon()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign treats a zero delta as negative, so a pure vertical or horizontal
// locked drag grows toward the origin side.
func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
