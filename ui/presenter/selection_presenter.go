package presenter

import (
	"fmt"
	"image"

	"github.com/soocke/video-crop-go/domain/geometry"
	"github.com/soocke/video-crop-go/domain/selection"
	"github.com/soocke/video-crop-go/ui/images"
)

// PreviewSource supplies the scaled preview frame and its mapping.
type PreviewSource interface {
	Loaded() bool
	Frame() *image.RGBA
	Transform() geometry.Transform
}

// SelectionView describes the UI surface updated by the presenter.
type SelectionView interface {
	UpdatePreview(img image.Image)
	SetSelectionLabel(string)
}

// SelectionPresenter translates pointer and key events from the preview
// window into selection session calls and re-renders the overlay.
type SelectionPresenter struct {
	session    selection.SessionContract
	preview    PreviewSource
	view       SelectionView
	handleSize int
}

// NewSelectionPresenter returns a presenter without an active session;
// call Attach once a video is loaded.
func NewSelectionPresenter(preview PreviewSource, view SelectionView, handleSize int) *SelectionPresenter {
	if handleSize < 2 {
		handleSize = 6
	}
	return &SelectionPresenter{preview: preview, view: view, handleSize: handleSize}
}

// Attach installs the session for a freshly loaded video and renders the
// initial state.
func (p *SelectionPresenter) Attach(session selection.SessionContract) {
	if p == nil {
		return
	}
	p.session = session
	p.Render()
}

// Session returns the active session, or nil before the first Attach.
func (p *SelectionPresenter) Session() selection.SessionContract {
	if p == nil {
		return nil
	}
	return p.session
}

func (p *SelectionPresenter) OnPointerDown(x, y int) {
	if p == nil || p.session == nil {
		return
	}
	p.session.PointerDown(image.Pt(x, y))
	p.Render()
}

func (p *SelectionPresenter) OnPointerMove(x, y int) {
	if p == nil || p.session == nil {
		return
	}
	p.session.PointerMove(image.Pt(x, y))
	p.Render()
}

func (p *SelectionPresenter) OnPointerUp() {
	if p == nil || p.session == nil {
		return
	}
	p.session.PointerUp()
	p.Render()
}

// OnShift tracks the held state of either shift key.
func (p *SelectionPresenter) OnShift(held bool) {
	if p == nil || p.session == nil {
		return
	}
	p.session.SetShiftHeld(held)
}

// OnSquareToggle reflects the persistent square-mode checkbutton.
func (p *SelectionPresenter) OnSquareToggle(on bool) {
	if p == nil || p.session == nil {
		return
	}
	p.session.SetSquareToggle(on)
}

func (p *SelectionPresenter) OnReset() {
	if p == nil || p.session == nil {
		return
	}
	p.session.Reset()
	p.Render()
}

func (p *SelectionPresenter) OnCancel() {
	if p == nil || p.session == nil {
		return
	}
	p.session.Cancel()
}

// Render redraws the preview with the current selection overlay and
// updates the dimensions label with the source-space rectangle.
func (p *SelectionPresenter) Render() {
	if p == nil || p.session == nil || p.preview == nil || p.view == nil {
		return
	}
	frame := p.preview.Frame()
	if frame == nil {
		return
	}
	rect := p.session.Rect()
	p.view.UpdatePreview(images.DrawSelection(frame, rect, p.handleSize))

	if rect.Dx() == 0 || rect.Dy() == 0 {
		p.view.SetSelectionLabel("ROI: Not selected")
		return
	}
	src := p.preview.Transform().ToSource(rect)
	p.view.SetSelectionLabel(fmt.Sprintf("ROI: (%d, %d) %dx%d px",
		src.Min.X, src.Min.Y, src.Dx(), src.Dy()))
}
