/*
 * MSP430 - Wrapper for slog
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 */

// Package logger wraps log/slog with a handler that mirrors every
// record to a log file and, for warnings and above (or when debug
// tracing is requested), to stderr as well. The demo monitor and the
// engine's optional instruction trace both log through it.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler that writes a compact, fixed-field line
// per record instead of slog's default key=value formatting, matching
// the terse console output the demo monitor wants.
type Handler struct {
	out   io.Writer
	inner slog.Handler
	mu    *sync.Mutex
	debug bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, a.Key+"="+a.Value.String())
		return true
	})
	line := []byte(strings.Join(fields, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(line)
	}
	if h.debug || r.Level >= slog.LevelWarn {
		_, err = os.Stderr.Write(line)
	}
	return err
}

// New returns a logger that writes to w (the log sink) and, when
// debug is true or the record is a warning or above, also to stderr.
// A nil w leaves stderr as the only destination: warnings and above,
// or every enabled record when debug is true.
func New(w io.Writer, level slog.Level, debug bool) *slog.Logger {
	h := &Handler{
		out:   w,
		inner: slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}),
		mu:    &sync.Mutex{},
		debug: debug,
	}
	return slog.New(h)
}
