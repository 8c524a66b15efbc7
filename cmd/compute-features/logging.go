// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"log/slog"

	"github.com/mattn/go-isatty"

	"github.com/gml4tdm/linkfeatures/config"
)

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// newLogger builds the process logger. Format "auto" means text on a
// terminal and JSON everywhere else.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	format := cfg.Format
	if format == "auto" {
		format = "json"
		if f, ok := w.(fdWriter); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
