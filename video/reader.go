package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"
)

// reader streams decoded frames from an ffmpeg rawvideo pipe.
type reader struct {
	info   Info
	cmd    *exec.Cmd
	stdout io.ReadCloser
	cancel context.CancelFunc
	stderr *bytes.Buffer
}

// OpenSource probes path and starts an ffmpeg process decoding it to raw
// RGBA frames on stdout. The returned Source yields frames in stream order
// and io.EOF when the pipe drains.
func OpenSource(ctx context.Context, path string) (Source, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	info, err := Probe(ctx, path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner",
		"-i", path,
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"pipe:1",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}

	// Wait must not run until the consumer has drained stdout: Wait closes
	// the pipe once the process exits, which would truncate the tail of a
	// stream the decoder finished ahead of us. Close reaps the process.
	return &reader{info: info, cmd: cmd, stdout: stdout, cancel: cancel, stderr: &stderr}, nil
}

func (r *reader) Info() Info { return r.info }

// ReadFrame reads one raw RGBA frame from the pipe.
func (r *reader) ReadFrame() (*image.RGBA, error) {
	w, h := r.info.Width, r.info.Height
	buf := make([]byte, w*h*4)
	if _, err := io.ReadFull(r.stdout, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading frame: %w", err)
	}
	return &image.RGBA{Pix: buf, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

func (r *reader) Close() error {
	r.cancel()
	_, _ = io.Copy(io.Discard, r.stdout)
	// The decoder is killed via context when the consumer stops early, so a
	// non-zero exit here is expected; surface nothing.
	_ = r.cmd.Wait()
	return nil
}

// ReadFirstFrame opens path, decodes only the first frame and closes the
// stream. Used by the preview.
func ReadFirstFrame(ctx context.Context, path string) (*image.RGBA, Info, error) {
	src, err := OpenSource(ctx, path)
	if err != nil {
		return nil, Info{}, err
	}
	defer src.Close()
	frame, err := src.ReadFrame()
	if err != nil {
		return nil, Info{}, fmt.Errorf("decoding first frame: %w", err)
	}
	return frame, src.Info(), nil
}
