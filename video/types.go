// Package video is the media collaborator: it opens files for sequential
// frame read or write and reports stream metadata. Decoding and encoding
// are delegated to ffmpeg/ffprobe subprocesses speaking raw RGBA over
// pipes; nothing above this package touches a codec.
package video

import (
	"context"
	"image"
)

// Info describes a video stream. FrameCount may be zero when the container
// does not declare it; readers then report frames until EOF.
type Info struct {
	Width      int
	Height     int
	FPSNum     int
	FPSDen     int
	FrameCount int
}

// FPS returns the frame rate as a float. Zero denominator yields 0.
func (i Info) FPS() float64 {
	if i.FPSDen == 0 {
		return 0
	}
	return float64(i.FPSNum) / float64(i.FPSDen)
}

// Source reads frames sequentially from an opened video.
type Source interface {
	Info() Info
	// ReadFrame returns the next frame in stream order, or io.EOF after the
	// last frame.
	ReadFrame() (*image.RGBA, error)
	Close() error
}

// Sink writes frames sequentially to an output video. Frames must be
// written in presentation order; the encoder requires sequential input.
type Sink interface {
	WriteFrame(*image.RGBA) error
	// Close flushes and finalizes the output. It must be called exactly once.
	Close() error
}

// Opener creates sources and sinks. It is the seam the crop pipeline is
// tested through.
type Opener interface {
	OpenSource(ctx context.Context, path string) (Source, error)
	OpenSink(ctx context.Context, path string, info Info) (Sink, error)
}
