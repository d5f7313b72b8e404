package geometry

import (
	"image"
	"testing"
)

func TestClampToBounds_Containment(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	cases := []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{"inside untouched", image.Rect(10, 10, 40, 40), image.Rect(10, 10, 40, 40)},
		{"pushed past right edge", image.Rect(80, 10, 120, 40), image.Rect(60, 10, 100, 40)},
		{"pushed past top-left", image.Rect(-20, -30, 10, 10), image.Rect(0, 0, 30, 40)},
		{"wider than bounds", image.Rect(-50, 20, 200, 50), image.Rect(0, 20, 100, 50)},
		{"taller than bounds", image.Rect(20, -50, 50, 300), image.Rect(20, 0, 50, 100)},
	}
	for _, tc := range cases {
		got := ClampToBounds(tc.in, bounds)
		if got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
		if !got.In(bounds) {
			t.Errorf("%s: result %v escapes bounds %v", tc.name, got, bounds)
		}
	}
}

func TestClampToBounds_Idempotent(t *testing.T) {
	bounds := image.Rect(0, 0, 640, 480)
	rects := []image.Rectangle{
		image.Rect(-10, -10, 700, 500),
		image.Rect(600, 400, 700, 500),
		image.Rect(5, 5, 6, 6),
		image.Rect(0, 0, 0, 0),
	}
	for _, r := range rects {
		once := ClampToBounds(r, bounds)
		twice := ClampToBounds(once, bounds)
		if once != twice {
			t.Errorf("clamp not idempotent for %v: %v then %v", r, once, twice)
		}
	}
}

func TestApplySquareLock_EqualSides(t *testing.T) {
	cases := []struct {
		anchor, pointer image.Point
		side            int
	}{
		{image.Pt(0, 0), image.Pt(300, 120), 300},
		{image.Pt(0, 0), image.Pt(120, 300), 300},
		{image.Pt(50, 50), image.Pt(10, 20), 40},
		{image.Pt(100, 100), image.Pt(160, 40), 60},
	}
	for _, tc := range cases {
		r := ApplySquareLock(tc.anchor, tc.pointer)
		if r.Dx() != r.Dy() {
			t.Errorf("anchor %v pointer %v: not square, %dx%d", tc.anchor, tc.pointer, r.Dx(), r.Dy())
		}
		if r.Dx() != tc.side {
			t.Errorf("anchor %v pointer %v: side %d want %d", tc.anchor, tc.pointer, r.Dx(), tc.side)
		}
		// The anchor must remain one of the rectangle's corners.
		corners := []image.Point{
			r.Min, r.Max,
			{r.Min.X, r.Max.Y}, {r.Max.X, r.Min.Y},
		}
		found := false
		for _, c := range corners {
			if c == tc.anchor {
				found = true
			}
		}
		if !found {
			t.Errorf("anchor %v lost: rect %v", tc.anchor, r)
		}
	}
}

func TestApplySquareLock_DegeneratePointer(t *testing.T) {
	r := ApplySquareLock(image.Pt(7, 9), image.Pt(7, 9))
	if r.Dx() != 0 || r.Dy() != 0 {
		t.Fatalf("expected degenerate rect, got %v", r)
	}
}
