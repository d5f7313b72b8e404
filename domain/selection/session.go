// Package selection owns the interactive crop-selection session: it folds
// pointer and key events into the current selection rectangle using the
// geometry package, and emits the finalized source-space rectangle on
// commit.
package selection

import (
	"image"
	"log/slog"

	"github.com/soocke/video-crop-go/domain/geometry"
)

// Session is the state of one interactive selection over a single preview
// frame. It must be driven from one logical event stream (the UI event
// loop); it is not safe for concurrent use. A session is discarded after
// Commit or Cancel; open a new one for the next video.
type Session struct {
	logger    *slog.Logger
	transform geometry.Transform
	bounds    image.Rectangle // letterboxed display area accepting input
	radius    int             // handle hit radius in display px
	minSrcPx  int             // minimum committed size per dimension, source px

	mode     Mode
	rect     image.Rectangle // display space, always canonical
	anchor   image.Point     // fixed corner during create/resize drags
	dragged  geometry.Handle // HandleNone while creating a fresh selection
	moveLast image.Point     // previous pointer position during a move drag

	shiftHeld    bool
	squareToggle bool

	listeners []Listener
}

// NewSession starts an idle session for a preview described by transform.
// initial is an optional source-space rectangle preloaded as the starting
// selection (empty for none). minSrcPx below 1 disables the minimum-size
// check beyond the zero-area rule.
func NewSession(logger *slog.Logger, transform geometry.Transform, handleRadius, minSrcPx int, initial image.Rectangle) *Session {
	if handleRadius < 1 {
		handleRadius = 1
	}
	s := &Session{
		logger:    logger,
		transform: transform,
		bounds:    transform.DisplayBounds(),
		radius:    handleRadius,
		minSrcPx:  minSrcPx,
		mode:      ModeIdle,
	}
	if !initial.Empty() {
		s.rect = geometry.ClampToBounds(transform.ToDisplay(initial), s.bounds)
	}
	return s
}

// AddListener registers a listener for mode transitions.
func (s *Session) AddListener(l Listener) { s.listeners = append(s.listeners, l) }

// Current returns the session mode.
func (s *Session) Current() Mode { return s.mode }

// Rect returns the current selection rectangle in display space. A zero-area
// rectangle means no selection.
func (s *Session) Rect() image.Rectangle { return s.rect }

// DraggedHandle returns the active handle while dragging, HandleNone
// otherwise.
func (s *Session) DraggedHandle() geometry.Handle {
	if s.mode != ModeDragging {
		return geometry.HandleNone
	}
	return s.dragged
}

// SetShiftHeld records whether the square-lock modifier key is held.
func (s *Session) SetShiftHeld(held bool) { s.shiftHeld = held }

// SetSquareToggle records the persistent square-mode flag.
func (s *Session) SetSquareToggle(on bool) { s.squareToggle = on }

// SquareLocked reports the derived lock flag: either trigger forces it.
func (s *Session) SquareLocked() bool { return s.shiftHeld || s.squareToggle }

// PointerDown begins a drag. On a handle or the rectangle body it starts a
// resize or move; anywhere else it starts a fresh selection anchored at p.
// Ignored outside Idle and outside the canvas.
func (s *Session) PointerDown(p image.Point) {
	if s.mode != ModeIdle {
		return
	}
	if !p.In(s.bounds) {
		return
	}
	switch h := geometry.HitTestHandle(s.rect, p, s.radius); h {
	case geometry.HandleMove:
		s.dragged = h
		s.moveLast = p
	case geometry.HandleNone:
		s.dragged = geometry.HandleNone
		s.anchor = p
		s.rect = image.Rectangle{Min: p, Max: p}
	default:
		s.dragged = h
		s.anchor = h.AnchorFor(s.rect)
	}
	s.transition(ModeDragging)
}

// PointerMove updates the drag in progress. Move events outside a drag are
// ignorable noise, not errors.
func (s *Session) PointerMove(p image.Point) {
	if s.mode != ModeDragging {
		return
	}
	p = clampPoint(p, s.bounds)
	switch {
	case s.dragged == geometry.HandleMove:
		delta := p.Sub(s.moveLast)
		moved := s.rect.Add(delta)
		s.rect = geometry.ClampToBounds(moved, s.bounds)
		s.moveLast = p
	case s.dragged == geometry.HandleNone || s.dragged.IsCorner():
		// Fresh drag or corner resize: the opposite corner stays anchored.
		if s.SquareLocked() {
			s.rect = geometry.ApplySquareLock(s.anchor, p)
		} else {
			s.rect = image.Rectangle{Min: s.anchor, Max: p}.Canon()
		}
		s.rect = geometry.ClampToBounds(s.rect, s.bounds)
	default:
		s.rect = geometry.ClampToBounds(s.resizeEdge(p), s.bounds)
	}
}

// resizeEdge moves only the dragged edge to the pointer's coordinate on
// that axis; the opposite edge stays fixed.
func (s *Session) resizeEdge(p image.Point) image.Rectangle {
	r := s.rect
	switch s.dragged {
	case geometry.HandleTop:
		r.Min.Y = p.Y
	case geometry.HandleBottom:
		r.Max.Y = p.Y
	case geometry.HandleLeft:
		r.Min.X = p.X
	case geometry.HandleRight:
		r.Max.X = p.X
	}
	return r.Canon()
}

// PointerUp ends the drag; the rectangle is retained but not committed.
func (s *Session) PointerUp() {
	if s.mode != ModeDragging {
		return
	}
	s.dragged = geometry.HandleNone
	s.transition(ModeIdle)
}

// Commit finalizes the selection. It maps the rectangle to source
// coordinates and enters the terminal Committed mode. A zero-area or
// below-minimum selection is a local no-op: the session stays Idle and
// ok is false.
func (s *Session) Commit() (src image.Rectangle, ok bool) {
	if s.mode != ModeIdle {
		return image.Rectangle{}, false
	}
	src = s.transform.ToSource(s.rect)
	if src.Dx() == 0 || src.Dy() == 0 {
		if s.logger != nil {
			s.logger.Debug("commit ignored: empty selection")
		}
		return image.Rectangle{}, false
	}
	if s.minSrcPx > 0 && (src.Dx() < s.minSrcPx || src.Dy() < s.minSrcPx) {
		if s.logger != nil {
			s.logger.Debug("commit ignored: selection below minimum",
				"w", src.Dx(), "h", src.Dy(), "min", s.minSrcPx)
		}
		return image.Rectangle{}, false
	}
	s.transition(ModeCommitted)
	return src, true
}

// Reset clears the selection and forces the session back to Idle. Ignored
// in terminal modes.
func (s *Session) Reset() {
	if s.mode.Terminal() {
		return
	}
	s.rect = image.Rectangle{}
	s.dragged = geometry.HandleNone
	if s.mode != ModeIdle {
		s.transition(ModeIdle)
	}
}

// Cancel abandons the session without emitting anything. Terminal.
func (s *Session) Cancel() {
	if s.mode.Terminal() {
		return
	}
	s.transition(ModeCancelled)
}

func (s *Session) transition(next Mode) {
	prev := s.mode
	if prev == next {
		return
	}
	s.mode = next
	if s.logger != nil {
		s.logger.Debug("selection mode transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}

func clampPoint(p image.Point, b image.Rectangle) image.Point {
	if p.X < b.Min.X {
		p.X = b.Min.X
	}
	if p.Y < b.Min.Y {
		p.Y = b.Min.Y
	}
	if p.X > b.Max.X {
		p.X = b.Max.X
	}
	if p.Y > b.Max.Y {
		p.Y = b.Max.Y
	}
	return p
}

// Ensure contract satisfaction.
var _ SessionContract = (*Session)(nil)
