package crop

import "errors"

// Failure taxonomy of the pipeline. Callers discriminate with errors.Is;
// every pipeline error wraps exactly one of these sentinels, so the UI can
// name the stage that failed.
var (
	// ErrInvalidSelection is a zero-area or out-of-bounds crop rectangle.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrSourceUnreadable is an input that cannot be opened or has no frames.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrOutputWrite is a failure creating the destination or writing a
	// frame. Partial output has been deleted when it is returned.
	ErrOutputWrite = errors.New("output write failed")
	// ErrUnsupportedFormat is an input or output container the tool does not
	// accept; detected before the pipeline starts.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
