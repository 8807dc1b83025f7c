// Package logger owns the process-wide zap logger. Each binary calls Init
// once at startup; everything else reaches the logger through L.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger

// Init builds the logger and installs it as the global one. Format is "json"
// for machine-readable request logs or "console" for local development;
// level is any of zap's named levels.
func Init(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeDuration = zapcore.MillisDurationEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q (want json or console)", format)
	}

	l := zap.New(
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	global = l
	return l, nil
}

// L returns the global logger. Panics if Init has not run; a binary that
// logs before configuring logging is a wiring bug.
func L() *zap.Logger {
	if global == nil {
		panic("logger not initialized: call logger.Init first")
	}
	return global
}

// Sync flushes buffered entries. Safe to defer before Init has run.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
