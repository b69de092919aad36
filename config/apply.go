/*
 * MSP430 - Apply startup-script directives to a live engine.
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

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mcu430/msp430/cpu"
)

// Apply executes directives against a running engine: firmware images
// are loaded into memory, breakpoints and watchpoints are armed, and
// STRICTSTACK toggles the engine's boundary-check mode. LogLevel
// directives are skipped here, since the logger is normally
// constructed once, before the engine exists; callers that want LOG
// lines honored should call LevelOf on the same directives themselves
// before building the engine's logger.
func Apply(directives []Directive, e *cpu.Engine) error {
	for _, d := range directives {
		if err := applyOne(d, e); err != nil {
			return fmt.Errorf("config: line %d: %w", d.Line, err)
		}
	}
	return nil
}

func applyOne(d Directive, e *cpu.Engine) error {
	switch d.Kind {
	case Load:
		data, err := os.ReadFile(d.Text)
		if err != nil {
			return err
		}
		return e.Mem.LoadImage(d.Addr, data)

	case Break:
		e.AddBreakpoint(d.Addr)

	case Watch:
		e.AddWatchpoint(d.Addr)

	case Reset:
		e.Regs.SetPC(d.Addr)

	case StrictStack:
		cpu.WithStrictStack(d.Flag)(e)

	case LogLevel:
		// Handled by LevelOf before the logger is constructed.

	default:
		return fmt.Errorf("unhandled directive kind %d", d.Kind)
	}
	return nil
}

// LevelOf returns the slog.Level named by the last LOG directive in
// directives, or the default level if none is present.
func LevelOf(directives []Directive, def slog.Level) slog.Level {
	level := def
	for _, d := range directives {
		if d.Kind != LogLevel {
			continue
		}
		switch d.Text {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	return level
}
