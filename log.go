package aoc

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// logger returns the harness logger, building it on first use. Flags must
// already be parsed so that -debug is honored.
func logger() *zap.SugaredLogger {
	if log == nil {
		log = newLogger(flagDebug).Sugar()
	}
	return log
}

func newLogger(debug bool) *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.DisableCaller = true
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return MustGet(config.Build())
}

// SetLogger replaces the harness logger. Tests use it with zap.NewNop.
func SetLogger(l *zap.Logger) {
	log = l.Sugar()
}

// Logger returns the harness logger for solvers that want to trace their
// work under -debug.
func Logger() *zap.SugaredLogger {
	return logger()
}
