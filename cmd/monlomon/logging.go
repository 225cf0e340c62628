package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newFileLogger returns a JSON logger writing to a rotated file, since the
// terminal belongs to the TUI. The returned func closes the file.
func newFileLogger(cfg appConfig) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger(), func() {}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: 3,
		Compress:   true,
	}
	logger := zerolog.New(rotator).Level(level).With().Timestamp().Str("app", "monlomon").Logger()
	return logger, func() { _ = rotator.Close() }
}
