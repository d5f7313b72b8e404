package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/soocke/video-crop-go/app"
	"github.com/soocke/video-crop-go/config"
	"github.com/soocke/video-crop-go/debug"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and memory metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if *debugFlag || cfg.Debug {
		debug.StartMemoryLogger(5*time.Second, logger)
		debug.StartGoroutineLogger(5*time.Second, logger)
	}

	application := app.NewApp("vcrop", 520, 480, cfg, *cfgPath, logger)
	application.Start()
}
