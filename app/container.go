package app

import (
	"log/slog"

	"github.com/soocke/video-crop-go/config"
	"github.com/soocke/video-crop-go/domain/crop"
	"github.com/soocke/video-crop-go/oplog"
	"github.com/soocke/video-crop-go/ui/model"
	"github.com/soocke/video-crop-go/ui/presenter"
	"github.com/soocke/video-crop-go/ui/view"
	"github.com/soocke/video-crop-go/video"
)

// handleSize is the drawn size of the selection grab squares.
const handleSize = 6

// AppContainer assembles models, collaborators, presenters and the views.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Preview *model.PreviewModel
	Job     *model.JobModel
	Runner  *crop.Runner
	Records *oplog.Writer

	RootView *view.RootView
	UI       view.UI

	SelectionPresenter *presenter.SelectionPresenter
	CropPresenter      *presenter.CropPresenter
	Loop               *presenter.Loop
}

// BuildContainer constructs all components. The Tk widgets themselves are
// built later by App.Start; the loop's Schedule callback is wired there.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Preview = model.NewPreviewModel()
	c.Job = &model.JobModel{}

	opener := video.FFOpener{Encoder: video.EncoderOptions{Codec: cfg.Encoder, Quality: cfg.Quality}}
	c.Runner = crop.NewRunner(opener, logger)
	c.Records = oplog.NewWriter(logger)

	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	c.SelectionPresenter = presenter.NewSelectionPresenter(c.Preview, c.RootView.Preview, handleSize)
	c.CropPresenter = presenter.NewCropPresenter(
		view.TkFilePicker{}, c.Runner, c.Records,
		c.SelectionPresenter, c.Preview, c.Job,
		cfg, cfgPath, c.UI, logger,
	)
	c.Loop = presenter.NewLoop(c.CropPresenter, nil)
	return c
}
