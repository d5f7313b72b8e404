package geometry

import (
	"image"
	"testing"
)

func TestHitTestHandle_AllHandles(t *testing.T) {
	r := image.Rect(100, 100, 300, 200)
	radius := 10
	cases := []struct {
		p    image.Point
		want Handle
	}{
		{image.Pt(100, 100), HandleTopLeft},
		{image.Pt(300, 100), HandleTopRight},
		{image.Pt(100, 200), HandleBottomLeft},
		{image.Pt(300, 200), HandleBottomRight},
		{image.Pt(200, 100), HandleTop},
		{image.Pt(200, 200), HandleBottom},
		{image.Pt(100, 150), HandleLeft},
		{image.Pt(300, 150), HandleRight},
		{image.Pt(200, 150), HandleMove},
		{image.Pt(50, 50), HandleNone},
		{image.Pt(312, 150), HandleNone},
		// Within radius, not exactly on the point.
		{image.Pt(305, 195), HandleBottomRight},
	}
	for _, tc := range cases {
		if got := HitTestHandle(r, tc.p, radius); got != tc.want {
			t.Errorf("point %v: got %v want %v", tc.p, got, tc.want)
		}
	}
}

func TestHitTestHandle_CornerBeatsEdge(t *testing.T) {
	// Small rectangle: every handle zone overlaps. A point nearest a corner
	// but also inside an edge handle's radius must resolve to the corner.
	r := image.Rect(0, 0, 30, 30)
	got := HitTestHandle(r, image.Pt(2, 2), 20)
	if got != HandleTopLeft {
		t.Fatalf("expected corner priority, got %v", got)
	}
}

func TestHitTestHandle_DegenerateRect(t *testing.T) {
	r := image.Rect(50, 50, 50, 50)
	if got := HitTestHandle(r, image.Pt(50, 50), 10); got != HandleNone {
		t.Fatalf("degenerate rect must hit nothing, got %v", got)
	}
	line := image.Rect(10, 10, 60, 10)
	if got := HitTestHandle(line, image.Pt(10, 10), 10); got != HandleNone {
		t.Fatalf("zero-height rect must hit nothing, got %v", got)
	}
}

func TestHandle_Strings(t *testing.T) {
	if HandleTopLeft.String() != "top-left" || HandleMove.String() != "move" || HandleNone.String() != "none" {
		t.Fatal("unexpected handle names")
	}
	if !HandleBottomRight.IsCorner() || HandleTop.IsCorner() || HandleMove.IsCorner() {
		t.Fatal("corner classification wrong")
	}
}
