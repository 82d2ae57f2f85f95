// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	String   = zap.String
	Int      = zap.Int
	Duration = zap.Duration
	ErrorF   = zap.Error
	Any      = zap.Any
)

// Config describes where and how log entries are written.
type Config struct {
	Level  string
	AsJSON bool
	// File enables a rotating file sink next to stdout when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a logger writing to stdout and, optionally, a rotated file.
func New(cfg Config) (*zap.Logger, error) {
	const op = "logger.New"

	level := zap.InfoLevel
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		level = lvl
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.AsJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if cfg.File != "" {
		sinks = append(sinks, zapcore.AddSync(rotating(cfg)))
	}

	core := zapcore.NewCore(enc, zapcore.NewMultiWriteSyncer(sinks...), level)
	return zap.New(core, zap.AddCaller()), nil
}

func rotating(cfg Config) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	if cfg.MaxSizeMB > 0 {
		lj.MaxSize = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		lj.MaxBackups = cfg.MaxBackups
	}
	if cfg.MaxAgeDays > 0 {
		lj.MaxAge = cfg.MaxAgeDays
	}
	return lj
}

// OrNop keeps optional logger parameters safe to call.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
