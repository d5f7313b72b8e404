package selection

import (
	"image"
	"log/slog"
	"sync"
	"testing"

	"github.com/soocke/video-crop-go/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// newTestSession returns a session over an identity 640x480 preview.
func newTestSession() *Session {
	tr := geometry.FitTransform(640, 480, 640, 480)
	return NewSession(discardLogger, tr, 10, 0, image.Rectangle{})
}

type modeRecorder struct {
	mu  sync.Mutex
	seq []Mode
}

func (r *modeRecorder) listener(prev, next Mode) {
	r.mu.Lock()
	r.seq = append(r.seq, next)
	r.mu.Unlock()
}

func TestSession_FreshDragCreatesSelection(t *testing.T) {
	s := newTestSession()
	s.PointerDown(image.Pt(50, 60))
	if s.Current() != ModeDragging {
		t.Fatalf("expected dragging, got %v", s.Current())
	}
	s.PointerMove(image.Pt(250, 180))
	s.PointerUp()
	if s.Current() != ModeIdle {
		t.Fatalf("expected idle after release, got %v", s.Current())
	}
	want := image.Rect(50, 60, 250, 180)
	if s.Rect() != want {
		t.Fatalf("rect %v want %v", s.Rect(), want)
	}
}

func TestSession_ReverseDragCanonicalizes(t *testing.T) {
	s := newTestSession()
	s.PointerDown(image.Pt(250, 180))
	s.PointerMove(image.Pt(50, 60))
	s.PointerUp()
	want := image.Rect(50, 60, 250, 180)
	if s.Rect() != want {
		t.Fatalf("rect %v want %v", s.Rect(), want)
	}
}

func TestSession_CommitZeroAreaIsNoOp(t *testing.T) {
	s := newTestSession()
	s.PointerDown(image.Pt(50, 50))
	s.PointerUp() // degenerate at (50,50)
	if _, ok := s.Commit(); ok {
		t.Fatal("zero-area commit must not succeed")
	}
	if s.Current() != ModeIdle {
		t.Fatalf("zero-area commit must not transition, got %v", s.Current())
	}
}

func TestSession_CommitEmitsSourceRect(t *testing.T) {
	tr := geometry.FitTransform(1920, 1080, 960, 540) // 2:1 preview
	s := NewSession(discardLogger, tr, 10, 0, image.Rectangle{})
	s.PointerDown(image.Pt(50, 50))
	s.PointerMove(image.Pt(250, 200))
	s.PointerUp()
	src, ok := s.Commit()
	if !ok {
		t.Fatal("commit failed")
	}
	if s.Current() != ModeCommitted {
		t.Fatalf("expected committed, got %v", s.Current())
	}
	want := image.Rect(100, 100, 500, 400)
	if src != want {
		t.Fatalf("source rect %v want %v", src, want)
	}
}

func TestSession_SquareLockMidDragOnCornerResize(t *testing.T) {
	s := newTestSession()
	// Existing selection (0,0)-(200,50).
	s.PointerDown(image.Pt(0, 0))
	s.PointerMove(image.Pt(200, 50))
	s.PointerUp()

	// Grab the bottom-right corner, then engage the lock mid-drag.
	s.PointerDown(image.Pt(200, 50))
	if s.DraggedHandle() != geometry.HandleBottomRight {
		t.Fatalf("expected bottom-right handle, got %v", s.DraggedHandle())
	}
	s.PointerMove(image.Pt(260, 100))
	s.SetShiftHeld(true)
	s.PointerMove(image.Pt(300, 120))
	s.PointerUp()

	want := image.Rect(0, 0, 300, 300)
	if s.Rect() != want {
		t.Fatalf("locked resize rect %v want %v", s.Rect(), want)
	}
}

func TestSession_SquareToggleAndShiftAreOrd(t *testing.T) {
	s := newTestSession()
	if s.SquareLocked() {
		t.Fatal("lock must start off")
	}
	s.SetSquareToggle(true)
	if !s.SquareLocked() {
		t.Fatal("persistent toggle must force the lock")
	}
	s.SetSquareToggle(false)
	s.SetShiftHeld(true)
	if !s.SquareLocked() {
		t.Fatal("held modifier must force the lock")
	}
	s.SetShiftHeld(false)
	if s.SquareLocked() {
		t.Fatal("lock must release with both triggers off")
	}
}

func TestSession_MoveDragPreservesSizeAndClamps(t *testing.T) {
	s := newTestSession()
	s.PointerDown(image.Pt(100, 100))
	s.PointerMove(image.Pt(200, 160))
	s.PointerUp()

	// Body drag toward the top-left corner, past the canvas edge.
	s.PointerDown(image.Pt(150, 130))
	if s.DraggedHandle() != geometry.HandleMove {
		t.Fatalf("expected move handle, got %v", s.DraggedHandle())
	}
	s.PointerMove(image.Pt(0, 0))
	s.PointerUp()

	r := s.Rect()
	if r.Dx() != 100 || r.Dy() != 60 {
		t.Fatalf("move changed size: %v", r)
	}
	if r.Min.X != 0 || r.Min.Y != 0 {
		t.Fatalf("expected hard stop at origin, got %v", r)
	}
}

func TestSession_EdgeResizeMovesOneAxis(t *testing.T) {
	s := newTestSession()
	s.PointerDown(image.Pt(100, 100))
	s.PointerMove(image.Pt(300, 200))
	s.PointerUp()

	// Drag the right edge midpoint outward.
	s.PointerDown(image.Pt(300, 150))
	if s.DraggedHandle() != geometry.HandleRight {
		t.Fatalf("expected right handle, got %v", s.DraggedHandle())
	}
	s.PointerMove(image.Pt(400, 170))
	s.PointerUp()

	want := image.Rect(100, 100, 400, 200)
	if s.Rect() != want {
		t.Fatalf("edge resize rect %v want %v", s.Rect(), want)
	}
}

func TestSession_MoveEventsOutsideDragIgnored(t *testing.T) {
	s := newTestSession()
	s.PointerMove(image.Pt(123, 45))
	if s.Current() != ModeIdle || !s.Rect().Empty() {
		t.Fatalf("stray move mutated session: mode=%v rect=%v", s.Current(), s.Rect())
	}
	s.PointerUp()
	if s.Current() != ModeIdle {
		t.Fatalf("stray release mutated session: %v", s.Current())
	}
}

func TestSession_ResetClearsSelection(t *testing.T) {
	s := newTestSession()
	s.PointerDown(image.Pt(10, 10))
	s.PointerMove(image.Pt(60, 60))
	s.Reset()
	if s.Current() != ModeIdle || !s.Rect().Empty() {
		t.Fatalf("reset failed: mode=%v rect=%v", s.Current(), s.Rect())
	}
}

func TestSession_CancelIsTerminal(t *testing.T) {
	s := newTestSession()
	r := &modeRecorder{}
	s.AddListener(r.listener)
	s.PointerDown(image.Pt(10, 10))
	s.Cancel()
	if s.Current() != ModeCancelled {
		t.Fatalf("expected cancelled, got %v", s.Current())
	}
	s.PointerDown(image.Pt(20, 20))
	if _, ok := s.Commit(); ok {
		t.Fatal("commit after cancel must fail")
	}
	if s.Current() != ModeCancelled {
		t.Fatalf("cancelled session accepted events: %v", s.Current())
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.seq) != 2 || r.seq[0] != ModeDragging || r.seq[1] != ModeCancelled {
		t.Fatalf("unexpected transition sequence %v", r.seq)
	}
}

func TestSession_MinimumSizeRejected(t *testing.T) {
	tr := geometry.FitTransform(640, 480, 640, 480)
	s := NewSession(discardLogger, tr, 10, 10, image.Rectangle{})
	s.PointerDown(image.Pt(50, 50))
	s.PointerMove(image.Pt(55, 58))
	s.PointerUp()
	if _, ok := s.Commit(); ok {
		t.Fatal("selection below minimum must be rejected")
	}
	if s.Current() != ModeIdle {
		t.Fatalf("rejected commit must stay idle, got %v", s.Current())
	}
}

func TestSession_PreloadedInitialSelection(t *testing.T) {
	tr := geometry.FitTransform(640, 480, 640, 480)
	s := NewSession(discardLogger, tr, 10, 0, image.Rect(100, 100, 300, 200))
	if s.Rect() != image.Rect(100, 100, 300, 200) {
		t.Fatalf("initial selection not preloaded: %v", s.Rect())
	}
	src, ok := s.Commit()
	if !ok || src != image.Rect(100, 100, 300, 200) {
		t.Fatalf("commit of preloaded selection: %v ok=%v", src, ok)
	}
}
