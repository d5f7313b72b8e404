package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/video-crop-go/config"
	"github.com/soocke/video-crop-go/ui/theme"
	"github.com/soocke/video-crop-go/ui/view"
)

const tick = 100 * time.Millisecond

type app struct {
	container *AppContainer
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	width     int
	height    int
	afterID   string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp builds the application around a DI container.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{
		container: BuildContainer(cfg, logger, cfgPath),
		cfg:       cfg,
		cfgPath:   cfgPath,
		logger:    logger,
		width:     width,
		height:    height,
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the widgets, wires the presenters and enters the Tk loop.
func (a *app) Start() {
	theme.InitStyles()
	c := a.container

	c.RootView.Build(
		func() { c.CropPresenter.OnOpenVideo(a.ctx) },
		c.CropPresenter.OnSquareMode,
		a.exitHandler,
	)
	c.RootView.Preview.SetHandlers(view.PreviewHandlers{
		OnPointerDown: c.SelectionPresenter.OnPointerDown,
		OnPointerMove: c.SelectionPresenter.OnPointerMove,
		OnPointerUp:   func() { c.SelectionPresenter.OnPointerUp() },
		OnShift:       c.SelectionPresenter.OnShift,
		OnCommit:      func() { c.CropPresenter.OnCommit(a.ctx) },
		OnReset:       func() { c.SelectionPresenter.OnReset() },
		OnClose:       func() { c.CropPresenter.OnPreviewClosed() },
	})
	c.Loop.Schedule = a.scheduleUpdate

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	a.container.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) exitHandler() {
	a.cancel()
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if err := a.cfg.Save(a.cfgPath); err != nil && a.logger != nil {
		a.logger.Error("failed to save config on exit", "path", a.cfgPath, "error", err)
	}
	Destroy(App)
}
