package view

import (
	"log/slog"

	"github.com/soocke/video-crop-go/config"
	"github.com/soocke/video-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const asciiLogo = `
__   _____ _ __ ___  _ __
\ \ / / __| '__/ _ \| '_ \
 \ V / (__| | | (_) | |_) |
  \_/ \___|_|  \___/| .__/
                    |_|`

// RootView composes the main window layout and wires UI callbacks.
// It owns the preview toplevel but exposes minimal surface for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Preview *PreviewView

	statusLabel *TLabelWidget
	recordLabel *TLabelWidget
	squareBtn   *TButtonWidget
	squareOn    bool
}

// UI abstracts the view operations needed by the crop presenter, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStatus(text string)
	SetLastRecord(text string)
	ShowPreview()
	ClosePreview()
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger, Preview: NewPreviewView(logger)}
}

// Build constructs the main window. Handlers are invoked on user actions.
func (rv *RootView) Build(onOpenVideo func(), onSquareMode func(bool), onExit func()) {
	if rv == nil {
		return
	}
	logo := TLabel(Txt(asciiLogo), Style(theme.StyleTitleLabel), Justify("left"))
	Grid(logo, Row(0), Column(0), Sticky("we"), Padx("2m"), Pady("2m"))

	instructions := TLabel(
		Txt("drag: select   shift: square   c/enter: crop   r: reset   esc: cancel"),
		Style(theme.StyleRecordLabel))
	Grid(instructions, Row(1), Column(0), Sticky("we"), Padx("2m"), Pady("0.3m"))

	openBtn := TButton(Txt("SELECT VIDEO FILE"), Style(theme.StyleActionButton), Command(onOpenVideo))
	Grid(openBtn, Row(2), Column(0), Sticky("we"), Padx("2m"), Pady("0.4m"))

	rv.squareOn = rv.cfg != nil && rv.cfg.SquareMode
	rv.squareBtn = TButton(Txt(rv.squareText()), Style(theme.StyleToggleButton), Command(func() {
		rv.squareOn = !rv.squareOn
		rv.squareBtn.Configure(Txt(rv.squareText()))
		onSquareMode(rv.squareOn)
	}))
	Grid(rv.squareBtn, Row(3), Column(0), Sticky("we"), Padx("2m"), Pady("0.4m"))

	rv.statusLabel = TLabel(Txt("no video loaded"), Style(theme.StyleStatusLabel))
	Grid(rv.statusLabel, Row(4), Column(0), Sticky("we"), Padx("2m"), Pady("0.3m"))

	rv.recordLabel = TLabel(Txt(""), Style(theme.StyleRecordLabel))
	Grid(rv.recordLabel, Row(5), Column(0), Sticky("we"), Padx("2m"), Pady("0.3m"))

	exitBtn := TButton(Txt("EXIT"), Style(theme.StyleActionButton), Command(onExit))
	Grid(exitBtn, Row(6), Column(0), Sticky("we"), Padx("2m"), Pady("0.4m"))

	GridColumnConfigure(App, 0, Weight(1))
}

func (rv *RootView) squareText() string {
	if rv.squareOn {
		return "[x] SQUARE MODE"
	}
	return "[ ] SQUARE MODE"
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.statusLabel != nil {
		rv.statusLabel.Configure(Txt(text))
	}
}

// SetLastRecord shows a one-line summary of the last completed crop.
func (rv *RootView) SetLastRecord(text string) {
	if rv != nil && rv.recordLabel != nil {
		rv.recordLabel.Configure(Txt(text))
	}
}

// ShowPreview opens or raises the preview window.
func (rv *RootView) ShowPreview() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Show()
	}
}

// ClosePreview tears down the preview window.
func (rv *RootView) ClosePreview() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Close()
	}
}
