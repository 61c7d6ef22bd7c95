// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// tabkeeper daemon and the interactive commands.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Request- and call-scoped loggers are taken from the context with
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is used when no log file is configured.
const DefaultLogFileName = "tabkeeper.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func setup() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns a JSON logger writing to stdout, tagged with role. The
// background daemon logs this way.
func NewLogger(role string) *Logger {
	setup()
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger for the interactive commands. Their stdout
// belongs to the user (and the TUI), so entries go to logFile instead. An
// empty logFile selects DefaultLogFileName in the user cache directory; when
// the file can not be opened the logger falls back to stderr.
func NewClientLogger(role, logFile string) *Logger {
	setup()

	if logFile == "" {
		logFile = DefaultLogPath()
	}

	var out io.Writer = os.Stderr
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err == nil {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

// DefaultLogPath returns the log file used when none is configured.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tabkeeper", DefaultLogFileName)
}

// SetLevel changes the global level. Unknown names are ignored.
func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		zerolog.SetGlobalLevel(lvl)
	}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting the receiver's fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// It never returns nil: without an attached logger zerolog hands back its
// default (disabled) context logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
