/*
 * MSP430 - Monitor command implementations.
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

package monitor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcu430/msp430/hexfmt"
)

// examine <addr> [count] prints count words (default 1) starting at
// addr, or at the address after the last examine/deposit if addr is
// omitted. Up to 8 words share a line, the way a hardware monitor's
// memory dump wraps long runs.
func examine(l *cmdLine, s *Session) (bool, error) {
	fields := strings.Fields(l.remaining())
	addr := s.lastHex
	count := 1
	var err error
	if len(fields) >= 1 && fields[0] != "" {
		addr, err = parseAddr(fields[0])
		if err != nil {
			return false, err
		}
	}
	if len(fields) >= 2 {
		count, err = strconv.Atoi(fields[1])
		if err != nil || count < 1 {
			return false, errors.New("invalid count")
		}
	}
	const perLine = 8
	for i := 0; i < count; i += perLine {
		n := perLine
		if remaining := count - i; remaining < n {
			n = remaining
		}
		words := make([]uint16, n)
		for j := range words {
			words[j] = s.Engine.Mem.ReadWord(addr + uint16(2*j))
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%04X: ", addr)
		hexfmt.FormatHalf(&b, true, words)
		fmt.Println(strings.TrimRight(b.String(), " "))
		addr += uint16(2 * n)
	}
	s.lastHex = addr
	return false, nil
}

// deposit <addr> <value> writes a 16-bit value into memory.
func deposit(l *cmdLine, s *Session) (bool, error) {
	fields := strings.Fields(l.remaining())
	if len(fields) != 2 {
		return false, errors.New("deposit requires <addr> <value>")
	}
	addr, err := parseAddr(fields[0])
	if err != nil {
		return false, err
	}
	val, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 16)
	if err != nil {
		return false, errors.New("invalid value: " + fields[1])
	}
	s.Engine.Mem.WriteWord(addr, uint16(val))
	s.lastHex = addr + 2
	return false, nil
}

func breakCmd(l *cmdLine, s *Session) (bool, error) {
	addr, err := parseAddr(l.remaining())
	if err != nil {
		return false, err
	}
	s.Engine.AddBreakpoint(addr)
	fmt.Printf("breakpoint set at %04X\n", addr)
	return false, nil
}

func unbreakCmd(l *cmdLine, s *Session) (bool, error) {
	addr, err := parseAddr(l.remaining())
	if err != nil {
		return false, err
	}
	s.Engine.RemoveBreakpoint(addr)
	return false, nil
}

func watchCmd(l *cmdLine, s *Session) (bool, error) {
	addr, err := parseAddr(l.remaining())
	if err != nil {
		return false, err
	}
	s.Engine.AddWatchpoint(addr)
	fmt.Printf("watchpoint set at %04X\n", addr)
	return false, nil
}

func unwatchCmd(l *cmdLine, s *Session) (bool, error) {
	addr, err := parseAddr(l.remaining())
	if err != nil {
		return false, err
	}
	s.Engine.RemoveWatchpoint(addr)
	return false, nil
}

// step [n] executes n instructions (default 1), printing each
// disassembled instruction and its cycle count as it runs.
func step(l *cmdLine, s *Session) (bool, error) {
	n := 1
	if arg := l.remaining(); arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 1 {
			return false, errors.New("invalid step count")
		}
		n = v
	}
	for i := 0; i < n; i++ {
		_, cycles, err := s.Engine.Step()
		if err != nil {
			printStop(err)
			return false, nil
		}
		fmt.Printf("%-28s ; %d cycles\n", s.Engine.Trace(), cycles)
	}
	return false, nil
}

// continue runs freely until a breakpoint, watchpoint, or execution
// error stops it.
func cont(l *cmdLine, s *Session) (bool, error) {
	_, err := s.Engine.Run(context.Background(), 0)
	if err != nil {
		printStop(err)
	}
	return false, nil
}

func printStop(err error) {
	fmt.Println("stopped: " + err.Error())
}

func resetCmd(l *cmdLine, s *Session) (bool, error) {
	arg := l.remaining()
	if arg == "" {
		s.Engine.Regs.SetPC(0)
		return false, nil
	}
	addr, err := parseAddr(arg)
	if err != nil {
		return false, err
	}
	s.Engine.Regs.SetPC(addr)
	return false, nil
}

// load <addr> <file> reads a raw firmware image into memory at addr.
func load(l *cmdLine, s *Session) (bool, error) {
	fields := strings.Fields(l.remaining())
	if len(fields) != 2 {
		return false, errors.New("load requires <addr> <file>")
	}
	addr, err := parseAddr(fields[0])
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(fields[1])
	if err != nil {
		return false, err
	}
	return false, s.Engine.Mem.LoadImage(addr, data)
}

func registers(l *cmdLine, s *Session) (bool, error) {
	r := s.Engine.Regs
	fmt.Printf("PC=%04X SP=%04X SR=%04X  C=%v Z=%v N=%v V=%v\n",
		r.PC(), r.SP(), r.SR(), r.Carry(), r.Zero(), r.Negative(), r.Overflow())
	for i := 4; i < 16; i++ {
		fmt.Printf("R%-2d=%04X ", i, r.Read(i))
		if i%4 == 3 {
			fmt.Println()
		}
	}
	return false, nil
}

func quit(l *cmdLine, s *Session) (bool, error) {
	return true, nil
}

func help(l *cmdLine, s *Session) (bool, error) {
	for _, c := range cmdList {
		fmt.Println("  " + c.name)
	}
	return false, nil
}
