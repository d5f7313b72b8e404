package view

import (
	"image"
	"log/slog"

	"github.com/soocke/video-crop-go/ui/images"
	"github.com/soocke/video-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PreviewHandlers carries the callbacks wired into the preview window.
type PreviewHandlers struct {
	OnPointerDown func(x, y int)
	OnPointerMove func(x, y int)
	OnPointerUp   func()
	OnShift       func(held bool)
	OnCommit      func()
	OnReset       func()
	OnClose       func()
}

// PreviewView manages the toplevel window showing the scaled first frame
// with the selection overlay. The frame is displayed in a label; pointer
// coordinates arrive in label space, which is exactly display space.
type PreviewView struct {
	logger   *slog.Logger
	handlers PreviewHandlers

	win      *ToplevelWidget
	frameLbl *LabelWidget
	roiLbl   *TLabelWidget
	photo    *Img
}

func NewPreviewView(logger *slog.Logger) *PreviewView {
	return &PreviewView{logger: logger}
}

// SetHandlers installs the event callbacks. Call before Show.
func (v *PreviewView) SetHandlers(h PreviewHandlers) {
	if v == nil {
		return
	}
	v.handlers = h
}

// Show opens the preview window, or refocuses it when already open.
func (v *PreviewView) Show() {
	if v == nil {
		return
	}
	if v.win != nil {
		Focus(v.win)
		return
	}
	win := App.Toplevel(Background(theme.ColorBg))
	win.WmTitle("Crop Video")
	v.win = win

	placeholder := image.NewRGBA(image.Rect(0, 0, 640, 360))
	v.photo = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.frameLbl = win.Label(Image(v.photo), Borderwidth(1), Relief("sunken"))
	Grid(v.frameLbl, Row(0), Column(0), Padx("1m"), Pady("1m"))

	v.roiLbl = win.TLabel(Txt("ROI: Not selected"), Style(theme.StyleStatusLabel))
	Grid(v.roiLbl, Row(1), Column(0), Sticky("we"), Padx("1m"), Pady("0.5m"))

	h := v.handlers
	Bind(v.frameLbl, "<Button-1>", Command(func(e *Event) {
		if h.OnPointerDown != nil {
			h.OnPointerDown(e.X, e.Y)
		}
	}))
	Bind(v.frameLbl, "<B1-Motion>", Command(func(e *Event) {
		if h.OnPointerMove != nil {
			h.OnPointerMove(e.X, e.Y)
		}
	}))
	Bind(v.frameLbl, "<ButtonRelease-1>", Command(func() {
		if h.OnPointerUp != nil {
			h.OnPointerUp()
		}
	}))

	shift := func(held bool) func() {
		return func() {
			if h.OnShift != nil {
				h.OnShift(held)
			}
		}
	}
	Bind(win, "<KeyPress-Shift_L>", Command(shift(true)))
	Bind(win, "<KeyPress-Shift_R>", Command(shift(true)))
	Bind(win, "<KeyRelease-Shift_L>", Command(shift(false)))
	Bind(win, "<KeyRelease-Shift_R>", Command(shift(false)))

	commit := func() {
		if h.OnCommit != nil {
			h.OnCommit()
		}
	}
	Bind(win, "<KeyPress-c>", Command(commit))
	Bind(win, "<Return>", Command(commit))
	Bind(win, "<KeyPress-r>", Command(func() {
		if h.OnReset != nil {
			h.OnReset()
		}
	}))
	close := func() {
		if h.OnClose != nil {
			h.OnClose()
		}
	}
	Bind(win, "<Escape>", Command(close))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", close)

	Focus(win)
}

// UpdatePreview replaces the displayed frame. Old Tk photo instances are
// disposed before replacement, preventing accumulation of off-screen
// image data.
func (v *PreviewView) UpdatePreview(img image.Image) {
	if v == nil || v.frameLbl == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.frameLbl.Configure(Image(v.photo))
}

// SetSelectionLabel updates the ROI readout under the frame.
func (v *PreviewView) SetSelectionLabel(text string) {
	if v == nil || v.roiLbl == nil {
		return
	}
	v.roiLbl.Configure(Txt(text))
}

// Close destroys the preview window.
func (v *PreviewView) Close() {
	if v == nil || v.win == nil {
		return
	}
	Destroy(v.win)
	v.win = nil
	v.frameLbl = nil
	v.roiLbl = nil
	v.photo = nil
}
