package selection

import "image"

// Mode enumerates the finite states of an interactive selection session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeCommitted
	ModeCancelled
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeCommitted:
		return "committed"
	case ModeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session accepts no further events.
func (m Mode) Terminal() bool { return m == ModeCommitted || m == ModeCancelled }

// Listener is called on each successful mode transition.
type Listener func(prev, next Mode)

// Interface slices for consumers (presenters).
type RectSource interface {
	Rect() image.Rectangle
	Current() Mode
}
type PointerOps interface {
	PointerDown(p image.Point)
	PointerMove(p image.Point)
	PointerUp()
}
type KeyOps interface {
	Commit() (image.Rectangle, bool)
	Reset()
	Cancel()
}
type LockOps interface {
	SetShiftHeld(bool)
	SetSquareToggle(bool)
	SquareLocked() bool
}

// SessionContract aggregates the session surface used for DI.
type SessionContract interface {
	RectSource
	PointerOps
	KeyOps
	LockOps
	AddListener(Listener)
}
