package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ffprobeOutput matches the subset of ffprobe JSON output we consume.
type ffprobeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
		NbFrames   string `json:"nb_frames"`
	} `json:"streams"`
}

// Probe runs ffprobe on path and returns the first video stream's
// dimensions, frame rate and declared frame count.
func Probe(ctx context.Context, path string) (Info, error) {
	args := []string{
		"-hide_banner",
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		path,
	}
	cmd := exec.CommandContext(ctx, "ffprobe", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Info{}, fmt.Errorf("ffprobe: %w: %s", err, stderr.String())
	}

	var out ffprobeOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return Info{}, fmt.Errorf("ffprobe: failed to parse output: %w", err)
	}
	return infoFromProbe(out)
}

func infoFromProbe(out ffprobeOutput) (Info, error) {
	for _, s := range out.Streams {
		if s.CodecType != "video" {
			continue
		}
		if s.Width <= 0 || s.Height <= 0 {
			return Info{}, fmt.Errorf("video stream has invalid dimensions %dx%d", s.Width, s.Height)
		}
		num, den := parseRate(s.RFrameRate)
		frames, _ := strconv.Atoi(s.NbFrames)
		return Info{
			Width:      s.Width,
			Height:     s.Height,
			FPSNum:     num,
			FPSDen:     den,
			FrameCount: frames,
		}, nil
	}
	return Info{}, fmt.Errorf("no video stream found")
}

// parseRate parses an ffprobe rational like "30000/1001" or "30/1".
// Unparseable input falls back to 30/1.
func parseRate(r string) (num, den int) {
	parts := strings.Split(r, "/")
	if len(parts) == 2 {
		n, err1 := strconv.Atoi(parts[0])
		d, err2 := strconv.Atoi(parts[1])
		if err1 == nil && err2 == nil && n > 0 && d > 0 {
			return n, d
		}
	}
	return 30, 1
}
