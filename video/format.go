package video

import (
	"path/filepath"
	"strings"
)

// Container formats accepted for reading and the single format written.
var (
	inputExtensions = map[string]bool{
		".mp4": true,
		".avi": true,
		".mov": true,
	}
	outputExtension = ".mp4"
)

// SupportedInput reports whether path carries an accepted input container
// extension. Format negotiation inside the container is ffmpeg's problem.
func SupportedInput(path string) bool {
	return inputExtensions[strings.ToLower(filepath.Ext(path))]
}

// SupportedOutput reports whether path carries the accepted output
// extension.
func SupportedOutput(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == outputExtension
}

// DefaultOutputPath derives an output path from the input path:
// "<stem>_cropped.mp4" next to the source file.
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cropped" + outputExtension
}
