package crop

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/video-crop-go/video"
)

// Runner executes crop operations against a video opener. Frames are
// processed strictly sequentially: output frame N is source frame N, no
// drops, no reordering.
type Runner struct {
	opener video.Opener
	logger *slog.Logger
	now    func() time.Time
	remove func(string) error
}

// NewRunner constructs a Runner over the given opener.
func NewRunner(opener video.Opener, logger *slog.Logger) *Runner {
	return &Runner{opener: opener, logger: logger, now: time.Now, remove: os.Remove}
}

// Run applies spec to every frame of the source. On success exactly one
// output file exists and the returned Record describes it; on any failure
// the partial output is deleted and the wrapped sentinel names the failed
// stage. Cancellation via ctx is honored between frames and treated as a
// write failure for cleanup purposes.
func (r *Runner) Run(ctx context.Context, spec Spec) (Record, error) {
	if !video.SupportedInput(spec.SourcePath) {
		return Record{}, fmt.Errorf("%w: input %q", ErrUnsupportedFormat, spec.SourcePath)
	}
	if !video.SupportedOutput(spec.OutputPath) {
		return Record{}, fmt.Errorf("%w: output %q", ErrUnsupportedFormat, spec.OutputPath)
	}

	src, err := r.opener.OpenSource(ctx, spec.SourcePath)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer src.Close()

	info := src.Info()
	rect := spec.Rect
	if rect.Dx() == 0 || rect.Dy() == 0 {
		return Record{}, fmt.Errorf("%w: zero-area rectangle", ErrInvalidSelection)
	}
	if !rect.In(image.Rect(0, 0, info.Width, info.Height)) {
		return Record{}, fmt.Errorf("%w: rectangle %v outside source %dx%d",
			ErrInvalidSelection, rect, info.Width, info.Height)
	}

	outInfo := video.Info{
		Width:  rect.Dx(),
		Height: rect.Dy(),
		FPSNum: info.FPSNum,
		FPSDen: info.FPSDen,
	}
	sink, err := r.opener.OpenSink(ctx, spec.OutputPath, outInfo)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	frames, err := r.copyFrames(ctx, src, sink, rect)
	if err != nil {
		_ = sink.Close()
		r.cleanup(spec.OutputPath)
		return Record{}, err
	}
	if err := sink.Close(); err != nil {
		r.cleanup(spec.OutputPath)
		return Record{}, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if frames == 0 {
		r.cleanup(spec.OutputPath)
		return Record{}, fmt.Errorf("%w: no frames decoded", ErrSourceUnreadable)
	}

	rec := Record{
		Timestamp:    r.now(),
		SourcePath:   spec.SourcePath,
		OutputPath:   spec.OutputPath,
		Rect:         rect,
		SourceWidth:  info.Width,
		SourceHeight: info.Height,
		OutputWidth:  rect.Dx(),
		OutputHeight: rect.Dy(),
		FPS:          info.FPS(),
		FrameCount:   frames,
	}
	if r.logger != nil {
		r.logger.Info("crop finished",
			"source", spec.SourcePath,
			"output", spec.OutputPath,
			"rect", rect.String(),
			"frames", frames,
		)
	}
	return rec, nil
}

// copyFrames pumps frames source -> sink until EOF, extracting rect from
// each. Returns the number of frames written.
func (r *Runner) copyFrames(ctx context.Context, src video.Source, sink video.Sink, rect image.Rectangle) (int, error) {
	frames := 0
	for {
		// Cooperative cancellation point between frames.
		select {
		case <-ctx.Done():
			return frames, fmt.Errorf("%w: %v", ErrOutputWrite, ctx.Err())
		default:
		}

		frame, err := src.ReadFrame()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			if frames == 0 {
				return 0, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
			}
			return frames, fmt.Errorf("%w: decode failed after %d frames: %v", ErrOutputWrite, frames, err)
		}

		cropped := extract(frame, rect)
		if err := sink.WriteFrame(cropped); err != nil {
			return frames, fmt.Errorf("%w: frame %d: %v", ErrOutputWrite, frames, err)
		}
		frames++
	}
}

// extract returns the rect sub-rectangle of frame as a standalone RGBA
// image with a zero-origin, contiguous pixel buffer.
func extract(frame *image.RGBA, rect image.Rectangle) *image.RGBA {
	sub, ok := frame.SubImage(rect).(*image.RGBA)
	if !ok {
		return image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	}
	w, h := rect.Dx(), rect.Dy()
	out := &image.RGBA{Pix: make([]byte, w*h*4), Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	for y := 0; y < h; y++ {
		srcOff := sub.PixOffset(rect.Min.X, rect.Min.Y+y)
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], sub.Pix[srcOff:srcOff+w*4])
	}
	return out
}

func (r *Runner) cleanup(path string) {
	if err := r.remove(path); err != nil && !os.IsNotExist(err) {
		if r.logger != nil {
			r.logger.Error("failed to delete partial output", "path", path, "error", err)
		}
	}
}
