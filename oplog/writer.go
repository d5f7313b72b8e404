// Package oplog writes human-readable sidecar logs next to cropped
// output files so a run leaves a record of what was cut and from where.
package oplog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/soocke/video-crop-go/domain/crop"
)

const sidecarSuffix = "_crop.txt"

// SidecarPath returns the log path for an output video: the output stem
// with a _crop.txt suffix, in the same directory.
func SidecarPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + sidecarSuffix
}

// Writer renders operation records into sidecar text files.
type Writer struct {
	logger    *slog.Logger
	writeFile func(string, []byte, os.FileMode) error
}

// NewWriter constructs a Writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{
		logger:    logger,
		writeFile: os.WriteFile,
	}
}

// Write stores rec next to its output file, overwriting any earlier log
// for the same path. Only completed runs produce a record, so the sidecar
// never describes a failed or partial output.
func (w *Writer) Write(rec crop.Record) error {
	path := SidecarPath(rec.OutputPath)
	if err := w.writeFile(path, []byte(render(rec)), 0o644); err != nil {
		return fmt.Errorf("write operation log %s: %w", path, err)
	}
	if w.logger != nil {
		w.logger.Debug("operation log written", "path", path)
	}
	return nil
}

func render(rec crop.Record) string {
	var b strings.Builder
	b.WriteString("vcrop:: operation log\n")
	fmt.Fprintf(&b, "timestamp:: %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"))
	b.WriteString("status:: cropped successfully\n\n")
	fmt.Fprintf(&b, "source: %s\n", rec.SourcePath)
	fmt.Fprintf(&b, "output: %s\n", rec.OutputPath)
	fmt.Fprintf(&b, "roi crop: (%d, %d, %d, %d)\n",
		rec.Rect.Min.X, rec.Rect.Min.Y, rec.OutputWidth, rec.OutputHeight)
	b.WriteString("--------------------------\n")
	fmt.Fprintf(&b, "position: (%d, %d)\n", rec.Rect.Min.X, rec.Rect.Min.Y)
	fmt.Fprintf(&b, "dimensions: %d x %d px\n", rec.OutputWidth, rec.OutputHeight)
	if rec.OutputHeight > 0 {
		fmt.Fprintf(&b, "aspect ratio: %.3f\n", float64(rec.OutputWidth)/float64(rec.OutputHeight))
	} else {
		b.WriteString("aspect ratio: N/A\n")
	}
	fmt.Fprintf(&b, "frames: %d @ %.3f fps\n", rec.FrameCount, rec.FPS)
	return b.String()
}
