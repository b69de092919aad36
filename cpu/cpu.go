/*
 * MSP430 - Fetch/decode/execute loop.
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

package cpu

import (
	"context"
	"fmt"

	"github.com/mcu430/msp430/isa"
	"github.com/mcu430/msp430/memory"
	"github.com/mcu430/msp430/register"
)

// Execute runs one already-decoded instruction against regs and mem.
// It is the core's public contract: a function of its four arguments
// plus whatever memory/register state they name, returning the cycle
// count the instruction consumed. It never reads or advances PC on
// the caller's behalf: by the time Execute is called, the caller
// (Engine.Step, or a host driving the engine directly) must already
// have moved PC past the instruction and its extension words.
func Execute(ins isa.Instruction, regs *register.File, mem *memory.Memory, ext []uint16) (uint32, error) {
	e := &Engine{Regs: regs, Mem: mem, strictStack: true}
	cycles, err := e.dispatch(ins, ext)
	return uint32(cycles), err
}

func (e *Engine) dispatch(ins isa.Instruction, ext []uint16) (int, error) {
	fn, ok := table[ins.Mnemonic]
	if !ok {
		return 0, &UnimplementedError{Mnemonic: ins.Mnemonic}
	}
	cycles, err := fn(e, ins, ext)
	if err != nil {
		return 0, err
	}
	if cycles < 1 {
		cycles = 1
	}
	return cycles, nil
}

// fetch reads the instruction word at pc, peeks how many extension
// words it needs, reads those, and decodes. It does not mutate PC.
func (e *Engine) fetch(pc uint16) (isa.Instruction, []uint16, error) {
	word := e.Mem.ReadWord(pc)
	n, err := isa.PeekLength(word)
	if err != nil {
		return isa.Instruction{}, nil, err
	}
	ext := make([]uint16, n)
	for i := 0; i < n; i++ {
		ext[i] = e.Mem.ReadWord(pc + 2 + uint16(2*i))
	}
	ins, err := isa.Decode(word, ext)
	if err != nil {
		return isa.Instruction{}, nil, err
	}
	return ins, ext, nil
}

// Step fetches, decodes, and executes exactly one instruction at the
// current PC, advancing PC past it (and its extension words) before
// the executor runs, matching the PC value hardware presents during
// operand fetch. It returns the decoded instruction, for tracing and
// disassembly, and the cycle count the executor reported.
func (e *Engine) Step() (isa.Instruction, int, error) {
	pc := e.Regs.PC()
	if e.hasBreakpoint(pc) {
		return isa.Instruction{}, 0, &BreakpointHit{PC: pc}
	}
	ins, ext, err := e.fetch(pc)
	if err != nil {
		return isa.Instruction{}, 0, err
	}
	e.Regs.SetPC(pc + uint16(2*ins.Len()))

	watchBefore := e.watchSnapshot()
	cycles, err := e.dispatch(ins, ext)
	if err == nil {
		if hit := e.checkWatchpoints(watchBefore); hit != nil {
			err = hit
		}
	}
	e.lastPC = pc
	e.lastText = ins.Disassemble(ext)
	if e.logger != nil {
		e.logger.Debug("step",
			"pc", fmt.Sprintf("0x%04X", pc),
			"instruction", e.lastText,
			"cycles", cycles,
			"err", err,
		)
	}
	return ins, cycles, err
}

// Trace returns "<pc>: <disassembly>" for the most recently stepped
// instruction, formatted with its extension words resolved. Hosts that
// want to display what just ran (the monitor's step command) without
// threading extension words through their own code use this instead
// of calling Instruction.Disassemble themselves.
func (e *Engine) Trace() string {
	return fmt.Sprintf("%04X: %s", e.lastPC, e.lastText)
}

// Run steps the engine until ctx is cancelled, Step returns an error
// (a fetch/decode or executor failure, or a BreakpointHit or
// WatchpointHit), or n instructions have executed (n <= 0 means
// unbounded). The stop check happens only between instructions, never
// inside one, so register/memory/flag state is always observed at an
// instruction boundary. It returns the total cycle count and, if
// execution stopped because Step returned an error, that error.
func (e *Engine) Run(ctx context.Context, n int) (uint64, error) {
	var total uint64
	for i := 0; n <= 0 || i < n; i++ {
		select {
		case <-ctx.Done():
			return total, nil
		default:
		}
		_, cycles, err := e.Step()
		total += uint64(cycles)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
