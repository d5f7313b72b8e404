package model

import (
	"image"

	"github.com/soocke/video-crop-go/domain/geometry"
	"github.com/soocke/video-crop-go/video"
)

// PreviewModel holds the loaded video's first frame, its probe info and
// the display transform for the scaled preview. Zero value means no video
// loaded and is usable. No synchronization needed: updates occur on the
// UI thread.
type PreviewModel struct {
	path      string
	frame     *image.RGBA
	info      video.Info
	transform geometry.Transform
}

func NewPreviewModel() *PreviewModel { return &PreviewModel{} }

// SetVideo installs a freshly loaded video. The transform maps the scaled
// preview back to source pixels and is swapped whole so readers never see
// a half-updated mapping.
func (m *PreviewModel) SetVideo(path string, frame *image.RGBA, info video.Info, t geometry.Transform) {
	if m == nil {
		return
	}
	m.path = path
	m.frame = frame
	m.info = info
	m.transform = t
}

// Clear drops the loaded video.
func (m *PreviewModel) Clear() {
	if m == nil {
		return
	}
	*m = PreviewModel{}
}

// Loaded reports whether a video is currently loaded.
func (m *PreviewModel) Loaded() bool {
	return m != nil && m.frame != nil
}

// Path returns the source path of the loaded video, or "".
func (m *PreviewModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Frame returns the first frame of the loaded video, or nil.
func (m *PreviewModel) Frame() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.frame
}

// Info returns the probe info of the loaded video.
func (m *PreviewModel) Info() video.Info {
	if m == nil {
		return video.Info{}
	}
	return m.info
}

// Transform returns the display-to-source mapping for the preview.
func (m *PreviewModel) Transform() geometry.Transform {
	if m == nil {
		return geometry.Transform{}
	}
	return m.transform
}
