package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// EncoderOptions select the ffmpeg encoder for the output sink.
type EncoderOptions struct {
	Codec   string // ffmpeg encoder name; empty means libx264
	Quality int    // CRF for libx264, CQ for nvenc, bitrate basis otherwise
}

// DefaultEncoderOptions returns the stock software encoder settings.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{Codec: "libx264", Quality: 23}
}

// writer feeds raw RGBA frames to an ffmpeg encoder over stdin.
type writer struct {
	info   Info
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	cancel context.CancelFunc
	eg     *errgroup.Group
	stderr *bytes.Buffer
	closed bool
}

// OpenSink starts an ffmpeg process encoding raw RGBA stdin input into
// path at info's dimensions and frame rate.
func OpenSink(ctx context.Context, path string, info Info, opts EncoderOptions) (Sink, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("invalid output dimensions %dx%d", info.Width, info.Height)
	}
	if opts.Codec == "" {
		opts = DefaultEncoderOptions()
	}

	ctx, cancel := context.WithCancel(ctx)
	args := buildEncoderArgs(path, info, opts)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	eg := &errgroup.Group{}
	w := &writer{info: info, cmd: cmd, stdin: stdin, cancel: cancel, eg: eg, stderr: &stderr}
	eg.Go(cmd.Wait)
	return w, nil
}

func buildEncoderArgs(path string, info Info, opts EncoderOptions) []string {
	num, den := info.FPSNum, info.FPSDen
	if num <= 0 || den <= 0 {
		num, den = 30, 1
	}
	args := []string{
		"-hide_banner",
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", info.Width, info.Height),
		"-framerate", fmt.Sprintf("%d/%d", num, den),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-c:v", opts.Codec,
	}
	switch opts.Codec {
	case "h264_videotoolbox":
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", opts.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", opts.Quality), "-preset", "medium")
	}
	return append(args, path)
}

// WriteFrame sends one frame's pixels to the encoder. The frame must match
// the sink's dimensions; stride and sub-image offsets are normalized.
func (w *writer) WriteFrame(img *image.RGBA) error {
	if img == nil {
		return fmt.Errorf("nil frame")
	}
	b := img.Bounds()
	if b.Dx() != w.info.Width || b.Dy() != w.info.Height {
		return fmt.Errorf("frame size %dx%d does not match sink %dx%d",
			b.Dx(), b.Dy(), w.info.Width, w.info.Height)
	}
	if img.Stride != b.Dx()*4 || b.Min.X != 0 || b.Min.Y != 0 {
		norm := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(norm, norm.Bounds(), img, b.Min, draw.Src)
		img = norm
	}
	if _, err := w.stdin.Write(img.Pix); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	return nil
}

// Close finishes the stream and waits for the encoder to finalize the
// container. Returns the encoder's error if it exited non-zero.
func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	_ = w.stdin.Close()
	err := w.eg.Wait()
	w.cancel()
	if err != nil {
		return fmt.Errorf("ffmpeg encoder: %w: %s", err, w.stderr.String())
	}
	return nil
}

// FFOpener is the production Opener backed by ffmpeg subprocesses.
type FFOpener struct {
	Encoder EncoderOptions
}

func (o FFOpener) OpenSource(ctx context.Context, path string) (Source, error) {
	return OpenSource(ctx, path)
}

func (o FFOpener) OpenSink(ctx context.Context, path string, info Info) (Sink, error) {
	return OpenSink(ctx, path, info, o.Encoder)
}

// Ensure contract satisfaction.
var _ Opener = FFOpener{}
