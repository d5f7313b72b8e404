package debug

// Memory/RSS periodic logger enabled when config.Debug is true.
// Logs resident set size along with Go heap stats to correlate native
// (ffmpeg pipe buffers, Tk image data) vs heap growth.

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// StartMemoryLogger launches a goroutine that logs memory stats every
// interval. It is best-effort; failures to query RSS are logged once and
// suppressed.
func StartMemoryLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	proc, procErr := process.NewProcess(int32(os.Getpid()))
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		rssErrLogged := procErr != nil
		if rssErrLogged {
			logger.Warn("memlog: process handle unavailable", slog.String("err", procErr.Error()))
		}
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss := uint64(0)
			if proc != nil {
				if mi, err := proc.MemoryInfo(); err == nil {
					rss = mi.RSS
				} else if !rssErrLogged {
					logger.Warn("memlog: memory info query failed", slog.String("err", err.Error()))
					rssErrLogged = true
				}
			}
			logger.Info("memstats",
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_idle", ms.HeapIdle),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
