package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "muckpond.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MB
)

// setupLogging routes slog and the standard logger to a file under dir when debug is set
// Otherwise all output is discarded: the terminal is in raw mode and must never see log lines
// The returned file is nil when logging is disabled or the file could not be opened
func setupLogging(dir string, debug bool) (*slog.Logger, *os.File) {
	// slog.SetDefault reroutes the standard logger, so log.SetOutput must follow it
	discard := func() (*slog.Logger, *os.File) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		log.SetOutput(io.Discard)
		return logger, nil
	}
	if !debug {
		return discard()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return discard()
	}

	path := filepath.Join(dir, logFileName)
	if err := rotateLog(path); err != nil {
		return discard()
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return discard()
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logger, f
}

// rotateLog renames path with a timestamp suffix once it exceeds maxLogSize
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], stamp, ext)
	return os.Rename(path, rotated)
}
