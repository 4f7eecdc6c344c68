// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default user log level and
// a colored [slog.Handler] for terminal output.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the command line flags --verbose, --quiet and --debug
// via [LevelFromFlags]. The default value is [slog.LevelInfo], or
// [slog.LevelDebug] / [slog.LevelWarn] with the debug / release build tags.
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to stderr with the level set to [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Handler is a [slog.Handler] that writes text records with
// the level and message colored for the terminal.
type Handler struct {
	slog.Handler
}

// NewHandler returns a new [Handler] writing to w and
// showing only messages at or above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{} // terminal output does not need timestamps
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(LevelColor(lvl, lvl.String()))
			}
			return a
		},
	}
	return &Handler{Handler: slog.NewTextHandler(w, opts)}
}
