package model

import (
	"errors"
	"image"
	"testing"

	"github.com/soocke/video-crop-go/domain/crop"
	"github.com/soocke/video-crop-go/domain/geometry"
	"github.com/soocke/video-crop-go/video"
)

func TestPreviewModel_Lifecycle(t *testing.T) {
	m := NewPreviewModel()
	if m.Loaded() {
		t.Fatal("fresh model must not report loaded")
	}

	frame := image.NewRGBA(image.Rect(0, 0, 960, 540))
	info := video.Info{Width: 1920, Height: 1080, FPSNum: 30, FPSDen: 1}
	tr := geometry.FitTransform(1920, 1080, 960, 540)
	m.SetVideo("clip.mp4", frame, info, tr)

	if !m.Loaded() || m.Path() != "clip.mp4" {
		t.Fatalf("loaded=%v path=%q", m.Loaded(), m.Path())
	}
	if m.Info().Width != 1920 {
		t.Fatalf("info %+v", m.Info())
	}
	if got := m.Transform().ToSource(image.Rect(0, 0, 480, 270)); got != image.Rect(0, 0, 960, 540) {
		t.Fatalf("transform not installed: %v", got)
	}

	m.Clear()
	if m.Loaded() || m.Path() != "" {
		t.Fatal("clear must drop the loaded video")
	}
}

func TestJobModel_SingleFlight(t *testing.T) {
	m := &JobModel{}
	if m.Running() {
		t.Fatal("zero value must be idle")
	}
	if !m.TryStart() {
		t.Fatal("first start must win")
	}
	if m.TryStart() {
		t.Fatal("second start must be rejected while running")
	}
	m.Finish(crop.Record{FrameCount: 90}, nil)
	if m.Running() {
		t.Fatal("finish must clear the running flag")
	}
	if !m.TryStart() {
		t.Fatal("restart after finish must win")
	}
}

func TestJobModel_Outcome(t *testing.T) {
	m := &JobModel{}
	if _, _, ok := m.LastOutcome(); ok {
		t.Fatal("no outcome before first job")
	}

	m.TryStart()
	m.Finish(crop.Record{OutputPath: "out.mp4", FrameCount: 90}, nil)
	rec, err, ok := m.LastOutcome()
	if !ok || err != nil || rec.FrameCount != 90 {
		t.Fatalf("outcome rec=%+v err=%v ok=%v", rec, err, ok)
	}

	m.TryStart()
	failure := errors.New("disk full")
	m.Finish(crop.Record{}, failure)
	_, err, ok = m.LastOutcome()
	if ok || err != failure {
		t.Fatalf("failed job: err=%v ok=%v", err, ok)
	}
}
