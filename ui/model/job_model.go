package model

import (
	"sync"
	"sync/atomic"

	"github.com/soocke/video-crop-go/domain/crop"
)

// JobModel tracks the single in-flight crop job. Concurrency-safe via
// atomic Bool because the pipeline goroutine and UI callbacks may race.
// The zero value is idle and usable.
type JobModel struct {
	running atomic.Bool

	mu      sync.Mutex
	lastRec crop.Record
	lastErr error
	hasRec  bool
}

// Running reports whether a crop job is currently executing.
func (m *JobModel) Running() bool {
	if m == nil {
		return false
	}
	return m.running.Load()
}

// TryStart marks the model running. It returns false if a job is already
// in flight, so only one pipeline runs at a time.
func (m *JobModel) TryStart() bool {
	if m == nil {
		return false
	}
	return m.running.CompareAndSwap(false, true)
}

// Finish records the job outcome and clears the running flag.
func (m *JobModel) Finish(rec crop.Record, err error) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.lastRec = rec
	m.lastErr = err
	m.hasRec = err == nil
	m.mu.Unlock()
	m.running.Store(false)
}

// LastOutcome returns the most recent completed job's record and error.
// ok is false until a job has finished successfully.
func (m *JobModel) LastOutcome() (rec crop.Record, err error, ok bool) {
	if m == nil {
		return crop.Record{}, nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRec, m.lastErr, m.hasRec
}
