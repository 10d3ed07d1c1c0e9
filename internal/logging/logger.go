// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logger.go
// Summary: Zap logger construction for terminal hosts.
// Notes: tcell owns the terminal, so logs only go to a rotated JSON file.

package logging

import (
	"os"
	"path/filepath"

	"github.com/framegrace/texelslide/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger writing to cfg.File (or config.DefaultLogPath) with
// lumberjack rotation. The returned close func flushes and closes the file.
func New(cfg config.LoggerConfig) (*zap.Logger, func() error, error) {
	path := cfg.File
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	logger := NewWithWriter(cfg, zapcore.AddSync(rotator))
	closer := func() error {
		_ = logger.Sync()
		return rotator.Close()
	}
	return logger, closer, nil
}

// NewWithWriter builds a JSON logger over ws. Unknown levels fall back to info.
func NewWithWriter(cfg config.LoggerConfig, ws zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("texelslide")
}
