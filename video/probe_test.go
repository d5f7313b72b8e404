package video

import (
	"encoding/json"
	"testing"
)

const sampleProbeJSON = `{
  "streams": [
    {"index": 0, "codec_type": "audio", "sample_rate": "48000", "channels": 2},
    {"index": 1, "codec_type": "video", "width": 1920, "height": 1080,
     "r_frame_rate": "30/1", "nb_frames": "90"}
  ]
}`

func TestInfoFromProbe(t *testing.T) {
	var out ffprobeOutput
	if err := json.Unmarshal([]byte(sampleProbeJSON), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	info, err := infoFromProbe(out)
	if err != nil {
		t.Fatalf("infoFromProbe: %v", err)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("dimensions %dx%d", info.Width, info.Height)
	}
	if info.FPSNum != 30 || info.FPSDen != 1 {
		t.Errorf("fps %d/%d", info.FPSNum, info.FPSDen)
	}
	if info.FrameCount != 90 {
		t.Errorf("frame count %d", info.FrameCount)
	}
}

func TestInfoFromProbe_NoVideoStream(t *testing.T) {
	var out ffprobeOutput
	if err := json.Unmarshal([]byte(`{"streams":[{"codec_type":"audio"}]}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := infoFromProbe(out); err == nil {
		t.Fatal("expected error for audio-only input")
	}
}

func TestParseRate(t *testing.T) {
	cases := []struct {
		in       string
		num, den int
	}{
		{"30/1", 30, 1},
		{"30000/1001", 30000, 1001},
		{"garbage", 30, 1},
		{"0/0", 30, 1},
	}
	for _, tc := range cases {
		n, d := parseRate(tc.in)
		if n != tc.num || d != tc.den {
			t.Errorf("parseRate(%q) = %d/%d want %d/%d", tc.in, n, d, tc.num, tc.den)
		}
	}
}
