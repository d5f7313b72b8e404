package view

import (
	"path/filepath"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TkFilePicker implements the presenter FilePicker contract with the
// native Tk file dialogs.
type TkFilePicker struct{}

// OpenVideo shows the open dialog and returns the chosen path.
func (TkFilePicker) OpenVideo() (string, bool) {
	files := GetOpenFile(Title("Select Video File"))
	if len(files) == 0 || files[0] == "" {
		return "", false
	}
	return files[0], true
}

// SaveVideo shows the save dialog seeded with defaultName.
func (TkFilePicker) SaveVideo(defaultName string) (string, bool) {
	out := GetSaveFile(
		Title("Save Cropped Video"),
		Initialdir(filepath.Dir(defaultName)),
		Initialfile(filepath.Base(defaultName)),
		Defaultextension(".mp4"),
	)
	if out == "" {
		return "", false
	}
	return out, true
}
