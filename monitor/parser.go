/*
 * MSP430 - Monitor command parser.
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

// Package monitor is an interactive debugger console for a cpu.Engine:
// examine/deposit memory, arm breakpoints and watchpoints, single-step
// or free-run, and inspect registers. Commands match on a minimum
// unambiguous prefix the way the teacher's command parser does, so
// "co" is enough for "continue" once no other command shares it.
package monitor

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mcu430/msp430/cpu"
)

type cmdLine struct {
	line string
	pos  int
}

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine, *Session) (bool, error)
	complete func(*cmdLine) []string
}

var cmdList = []cmd{
	{name: "examine", min: 1, process: examine},
	{name: "deposit", min: 1, process: deposit},
	{name: "break", min: 2, process: breakCmd},
	{name: "unbreak", min: 4, process: unbreakCmd},
	{name: "watch", min: 1, process: watchCmd},
	{name: "unwatch", min: 3, process: unwatchCmd},
	{name: "step", min: 2, process: step},
	{name: "continue", min: 1, process: cont},
	{name: "reset", min: 2, process: resetCmd},
	{name: "load", min: 1, process: load},
	{name: "registers", min: 1, process: registers},
	{name: "quit", min: 1, process: quit},
	{name: "help", min: 1, process: help},
}

// ProcessCommand runs one line of monitor input against session,
// returning true when the session should exit.
func ProcessCommand(line string, session *Session) (bool, error) {
	l := &cmdLine{line: line}
	name := l.getWord()

	matches := matchList(name)
	switch len(matches) {
	case 0:
		return false, errors.New("unknown command: " + name)
	case 1:
		return matches[0].process(l, session)
	default:
		return false, errors.New("ambiguous command: " + name)
	}
}

// CompleteCmd returns the command names whose prefix matches line's
// first word, for liner's tab-completion hook. As in ProcessCommand, a
// word shorter than a command's minimum abbreviation does not match it.
func CompleteCmd(line string) []string {
	l := &cmdLine{line: line}
	name := l.getWord()
	matches := matchList(name)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var out []cmd
	for _, c := range cmdList {
		if matchCommand(c, name) {
			out = append(out, c)
		}
	}
	return out
}

func matchCommand(c cmd, name string) bool {
	if len(name) > len(c.name) || len(name) < c.min {
		return false
	}
	return c.name[:len(name)] == name
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) skipSpace() {
	for !l.isEOL() && l.line[l.pos] == ' ' {
		l.pos++
	}
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && l.line[l.pos] != ' ' {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

func (l *cmdLine) remaining() string {
	l.skipSpace()
	return l.line[l.pos:]
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.New("invalid address: " + s)
	}
	return uint16(v), nil
}

// Session wires a monitor to one engine. It exists separately from
// cpu.Engine so the monitor can add its own ephemeral state (last
// examined address) without the engine needing to know a debugger
// exists.
type Session struct {
	Engine  *cpu.Engine
	lastHex uint16
}

func New(e *cpu.Engine) *Session {
	return &Session{Engine: e}
}
