// medfind - Medicine, Pharmacy and Blood Request Finder
// Copyright (C) 2025 The medfind Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
)

// Handler routes records by level: info and below go to the regular
// output, warnings and errors to the error output.
type Handler struct {
	out slog.Handler
	err slog.Handler
}

func newLogger(w io.Writer, level log.Level, styles *log.Styles) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Level: level})
	l.SetStyles(styles)
	return l
}

func errorStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString(gotext.Get("ERROR")).
		Padding(0, 1).
		Background(lipgloss.Color("204")).
		Foreground(lipgloss.Color("0"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString(gotext.Get("WARN")).
		Bold(true).
		Foreground(lipgloss.Color("214"))
	return styles
}

func NewHandler(out, errOut io.Writer, level log.Level) *Handler {
	return &Handler{
		out: newLogger(out, level, log.DefaultStyles()),
		err: newLogger(errOut, level, errorStyles()),
	}
}

func (h *Handler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelWarn {
		return h.err
	}
	return h.out
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	return h.pick(rec.Level).Handle(ctx, rec)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out.WithAttrs(attrs), err: h.err.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out.WithGroup(name), err: h.err.WithGroup(name)}
}

func SetupDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, os.Stderr, log.InfoLevel)))
}

// SetLevel replaces the default logger with one at the named level
// ("debug", "info", "warn" or "error").
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(os.Stdout, os.Stderr, lvl)))
	return nil
}
