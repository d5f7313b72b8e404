package presenter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"path/filepath"

	"github.com/soocke/video-crop-go/config"
	"github.com/soocke/video-crop-go/domain/crop"
	"github.com/soocke/video-crop-go/domain/geometry"
	"github.com/soocke/video-crop-go/domain/selection"
	"github.com/soocke/video-crop-go/ui/images"
	"github.com/soocke/video-crop-go/ui/model"
	"github.com/soocke/video-crop-go/video"
)

// FilePicker abstracts the open/save dialogs so the presenter stays
// testable without a display.
type FilePicker interface {
	OpenVideo() (string, bool)
	SaveVideo(defaultName string) (string, bool)
}

// PipelineRunner narrows the crop runner to the single call used here.
type PipelineRunner interface {
	Run(ctx context.Context, spec crop.Spec) (crop.Record, error)
}

// RecordWriter persists a completed operation record.
type RecordWriter interface {
	Write(rec crop.Record) error
}

// CropView describes the main-window surface updated by the presenter.
type CropView interface {
	SetStatus(string)
	SetLastRecord(string)
	ShowPreview()
	ClosePreview()
}

type jobOutcome struct {
	rec crop.Record
	err error
}

// CropPresenter loads videos into the preview, turns committed
// selections into pipeline runs and reflects their outcome. The pipeline
// executes on its own goroutine; outcomes are queued and flushed to the
// view on Tick so widget updates stay on the UI thread.
type CropPresenter struct {
	Picker     FilePicker
	Loader     func(ctx context.Context, path string) (*image.RGBA, video.Info, error)
	Runner     PipelineRunner
	Records    RecordWriter
	Selection  *SelectionPresenter
	Preview    *model.PreviewModel
	Job        *model.JobModel
	Config     *config.Config
	ConfigPath string
	View       CropView

	logger   *slog.Logger
	resultCh chan jobOutcome
}

// NewCropPresenter constructs a crop presenter.
func NewCropPresenter(picker FilePicker, runner PipelineRunner, records RecordWriter,
	sel *SelectionPresenter, preview *model.PreviewModel, job *model.JobModel,
	cfg *config.Config, configPath string, view CropView, logger *slog.Logger) *CropPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &CropPresenter{
		Picker:     picker,
		Loader:     video.ReadFirstFrame,
		Runner:     runner,
		Records:    records,
		Selection:  sel,
		Preview:    preview,
		Job:        job,
		Config:     cfg,
		ConfigPath: configPath,
		View:       view,
		logger:     logger,
		resultCh:   make(chan jobOutcome, 1),
	}
}

// OnOpenVideo asks for a source file, probes it, installs the scaled
// first frame in the preview model and starts a fresh selection session.
func (p *CropPresenter) OnOpenVideo(ctx context.Context) {
	if p == nil || p.Picker == nil || p.Loader == nil || p.View == nil {
		return
	}
	path, ok := p.Picker.OpenVideo()
	if !ok {
		return
	}
	if !video.SupportedInput(path) {
		p.View.SetStatus("unsupported file: " + filepath.Base(path))
		return
	}
	frame, info, err := p.Loader(ctx, path)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("failed to load video", "path", path, "error", err)
		}
		p.View.SetStatus("could not read " + filepath.Base(path))
		return
	}

	scaled := toRGBA(images.ScaleToFit(frame, p.Config.PreviewMaxW, p.Config.PreviewMaxH))
	db := scaled.Bounds()
	tr := geometry.FitTransform(info.Width, info.Height, db.Dx(), db.Dy())
	p.Preview.SetVideo(path, scaled, info, tr)

	p.attachSession(tr, p.savedSelection())
	p.View.ShowPreview()
	p.View.SetStatus(fmt.Sprintf("%s: %dx%d @ %.2f fps",
		filepath.Base(path), info.Width, info.Height, info.FPS()))
}

// OnCommit finalizes the selection, asks for an output path and starts
// the crop pipeline. A second commit while a job runs is rejected.
func (p *CropPresenter) OnCommit(ctx context.Context) {
	if p == nil || p.Selection == nil || p.Preview == nil || !p.Preview.Loaded() {
		return
	}
	sess := p.Selection.Session()
	if sess == nil {
		return
	}
	if p.Job.Running() {
		p.View.SetStatus("a crop is already running")
		return
	}

	srcRect, ok := sess.Commit()
	if !ok {
		p.View.SetStatus("selection too small")
		return
	}
	// The session is terminal once committed; hand the preview a fresh
	// one carrying the same rectangle.
	p.attachSession(p.Preview.Transform(), srcRect)

	out, ok := p.Picker.SaveVideo(video.DefaultOutputPath(p.Preview.Path()))
	if !ok {
		return
	}

	spec := crop.NewSpec(p.Preview.Path(), out, srcRect)
	if !p.Job.TryStart() {
		return
	}
	p.persistSelection(spec.Rect)
	p.View.SetStatus("cropping " + filepath.Base(p.Preview.Path()) + "...")

	go func() {
		rec, err := p.Runner.Run(ctx, spec)
		if err == nil && p.Records != nil {
			if werr := p.Records.Write(rec); werr != nil && p.logger != nil {
				p.logger.Error("operation log failed", "error", werr)
			}
		}
		p.Job.Finish(rec, err)
		select {
		case p.resultCh <- jobOutcome{rec: rec, err: err}:
		default:
		}
	}()
}

// OnPreviewClosed cancels the active session and drops the loaded video.
func (p *CropPresenter) OnPreviewClosed() {
	if p == nil {
		return
	}
	if p.Selection != nil {
		p.Selection.OnCancel()
	}
	if p.Preview != nil {
		p.Preview.Clear()
	}
	if p.View != nil {
		p.View.ClosePreview()
	}
}

// OnSquareMode persists the square-mode checkbutton and forwards it to
// the active session.
func (p *CropPresenter) OnSquareMode(on bool) {
	if p == nil {
		return
	}
	p.Config.SquareMode = on
	p.saveConfig()
	if p.Selection != nil {
		p.Selection.OnSquareToggle(on)
	}
}

// Tick flushes any finished job outcome to the view.
func (p *CropPresenter) Tick() {
	if p == nil || p.View == nil {
		return
	}
	select {
	case out := <-p.resultCh:
		if out.err != nil {
			p.View.SetStatus(describeFailure(out.err))
			return
		}
		p.View.SetStatus("cropped successfully")
		p.View.SetLastRecord(fmt.Sprintf("%dx%d px, %d frames -> %s",
			out.rec.OutputWidth, out.rec.OutputHeight, out.rec.FrameCount,
			filepath.Base(out.rec.OutputPath)))
	default:
	}
}

func (p *CropPresenter) attachSession(tr geometry.Transform, initial image.Rectangle) {
	sess := selection.NewSession(p.logger, tr, p.Config.HandleRadius, p.Config.MinSelectionPx, initial)
	p.Selection.Attach(sess)
	p.Selection.OnSquareToggle(p.Config.SquareMode)
}

// savedSelection returns the source-space rectangle persisted by the
// previous run, or an empty rectangle.
func (p *CropPresenter) savedSelection() image.Rectangle {
	c := p.Config
	if c.SelectionW <= 0 || c.SelectionH <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(c.SelectionX, c.SelectionY,
		c.SelectionX+c.SelectionW, c.SelectionY+c.SelectionH)
}

func (p *CropPresenter) persistSelection(r image.Rectangle) {
	p.Config.SelectionX = r.Min.X
	p.Config.SelectionY = r.Min.Y
	p.Config.SelectionW = r.Dx()
	p.Config.SelectionH = r.Dy()
	p.saveConfig()
}

func (p *CropPresenter) saveConfig() {
	if p.ConfigPath == "" {
		return
	}
	if err := p.Config.Save(p.ConfigPath); err != nil && p.logger != nil {
		p.logger.Error("failed to save config", "path", p.ConfigPath, "error", err)
	}
}

func describeFailure(err error) string {
	switch {
	case errors.Is(err, crop.ErrInvalidSelection):
		return "crop failed: invalid selection"
	case errors.Is(err, crop.ErrUnsupportedFormat):
		return "crop failed: unsupported file format"
	case errors.Is(err, crop.ErrSourceUnreadable):
		return "crop failed: could not read source video"
	case errors.Is(err, crop.ErrOutputWrite):
		return "crop failed: could not write output video"
	default:
		return "crop failed: " + err.Error()
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
