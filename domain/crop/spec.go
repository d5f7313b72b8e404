// Package crop applies a finalized selection rectangle to every frame of a
// source video, producing a cropped output file and a record of the
// operation.
package crop

import (
	"image"
	"time"
)

// Spec is the immutable input of one crop operation: the finalized
// rectangle in source pixel coordinates plus the resolved paths. Construct
// it with NewSpec and hand it by value.
type Spec struct {
	SourcePath string
	OutputPath string
	Rect       image.Rectangle // source space, canonical
}

// NewSpec builds a Spec. The rectangle is canonicalized and its dimensions
// floored to even values so the yuv420p output encoder accepts them.
func NewSpec(sourcePath, outputPath string, rect image.Rectangle) Spec {
	rect = rect.Canon()
	rect.Max.X = rect.Min.X + rect.Dx()/2*2
	rect.Max.Y = rect.Min.Y + rect.Dy()/2*2
	return Spec{SourcePath: sourcePath, OutputPath: outputPath, Rect: rect}
}

// Record describes one completed crop operation. Append-only; written once
// per successful run.
type Record struct {
	Timestamp    time.Time
	SourcePath   string
	OutputPath   string
	Rect         image.Rectangle // source space
	SourceWidth  int
	SourceHeight int
	OutputWidth  int
	OutputHeight int
	FPS          float64
	FrameCount   int
}
