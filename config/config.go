/*
 * MSP430 - Startup configuration file parser
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

// Package config parses the monitor's startup script: one directive per
// line, loading firmware images, priming breakpoints/watchpoints and
// picking log verbosity before the engine starts running. The line
// grammar and scanning style follow the teacher's device config file
// format, scaled down to the handful of directives a single-core
// emulator needs instead of a multi-device mainframe's model registry.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind identifies which directive a Directive line carries.
type Kind int

const (
	Load Kind = iota
	Break
	Watch
	Reset
	LogLevel
	StrictStack
)

// Directive is one parsed line of a startup script.
type Directive struct {
	Kind  Kind
	Addr  uint16 // Load/Break/Watch/Reset
	Text  string // Load's file path, or LogLevel's level name
	Flag  bool   // StrictStack's on/off value
	Line  int
}

var ErrUnknownDirective = errors.New("config: unknown directive")

// Parse reads a startup script, returning one Directive per non-blank,
// non-comment line. '#' begins a comment that runs to end of line.
func Parse(r io.Reader) ([]Directive, error) {
	var directives []Directive
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		d, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("config: line %d: %w", lineNum, err)
		}
		if !ok {
			continue
		}
		d.Line = lineNum
		directives = append(directives, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return directives, nil
}

// ParseFile opens name and parses it with Parse.
func ParseFile(name string) ([]Directive, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func parseLine(line string) (Directive, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Directive{}, false, nil
	}

	fields := strings.Fields(line)
	keyword := strings.ToUpper(fields[0])
	args := fields[1:]

	switch keyword {
	case "LOAD":
		if len(args) != 2 {
			return Directive{}, false, errors.New("LOAD requires <addr> <file>")
		}
		addr, err := parseAddr(args[0])
		if err != nil {
			return Directive{}, false, err
		}
		return Directive{Kind: Load, Addr: addr, Text: args[1]}, true, nil

	case "BREAK":
		addr, err := requireAddr(args, "BREAK")
		if err != nil {
			return Directive{}, false, err
		}
		return Directive{Kind: Break, Addr: addr}, true, nil

	case "WATCH":
		addr, err := requireAddr(args, "WATCH")
		if err != nil {
			return Directive{}, false, err
		}
		return Directive{Kind: Watch, Addr: addr}, true, nil

	case "RESET":
		addr, err := requireAddr(args, "RESET")
		if err != nil {
			return Directive{}, false, err
		}
		return Directive{Kind: Reset, Addr: addr}, true, nil

	case "LOG":
		if len(args) != 1 {
			return Directive{}, false, errors.New("LOG requires a level")
		}
		return Directive{Kind: LogLevel, Text: strings.ToLower(args[0])}, true, nil

	case "STRICTSTACK":
		if len(args) != 1 {
			return Directive{}, false, errors.New("STRICTSTACK requires on|off")
		}
		flag, err := parseBool(args[0])
		if err != nil {
			return Directive{}, false, err
		}
		return Directive{Kind: StrictStack, Flag: flag}, true, nil

	default:
		return Directive{}, false, fmt.Errorf("%w: %s", ErrUnknownDirective, fields[0])
	}
}

func requireAddr(args []string, keyword string) (uint16, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s requires <addr>", keyword)
	}
	return parseAddr(args[0])
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
