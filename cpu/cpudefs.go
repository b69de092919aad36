/*
 * MSP430 - Engine state and instruction dispatch table.
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

// Package cpu is the instruction execution engine: it binds a register
// file and a memory view, dispatches decoded instructions to their
// semantic functions, and accounts cycles.
package cpu

import (
	"log/slog"

	"github.com/mcu430/msp430/isa"
	"github.com/mcu430/msp430/memory"
	"github.com/mcu430/msp430/register"
)

// Engine owns one MSP430 core's register file and the memory it
// executes against. Unlike the mainframe core this package is modelled
// on, Engine is instantiable rather than a package-level singleton:
// the spec requires the host to own independent, test-isolated cores.
type Engine struct {
	Regs *register.File
	Mem  *memory.Memory

	logger      *slog.Logger
	strictStack bool

	breakpoints map[uint16]struct{}
	watchpoints map[uint16]struct{}

	lastPC   uint16
	lastText string
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger that records each executed
// instruction at debug level. A nil logger (the default) disables
// tracing entirely.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithStrictStack makes PUSH/CALL/POP/RETI treat the SP boundary
// checks as fatal errors returned to the caller rather than a
// quiet hardware-style wraparound. It is on by default; the option
// exists so a host emulating firmware that deliberately wraps SP can
// opt out.
func WithStrictStack(strict bool) Option {
	return func(e *Engine) { e.strictStack = strict }
}

// NewEngine binds regs and mem into an Engine ready to Step. Strict
// stack checking is enabled by default.
func NewEngine(regs *register.File, mem *memory.Memory, opts ...Option) *Engine {
	e := &Engine{Regs: regs, Mem: mem, strictStack: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type executor func(e *Engine, ins isa.Instruction, ext []uint16) (int, error)

var table = createTable()

func createTable() map[isa.Mnemonic]executor {
	t := make(map[isa.Mnemonic]executor, 32)

	t[isa.MOV] = opMove
	t[isa.ADD] = opAdd
	t[isa.ADDC] = opAddc
	t[isa.SUB] = opSub
	t[isa.SUBC] = opSubc
	t[isa.CMP] = opCmp
	t[isa.DADD] = opDadd

	t[isa.AND] = opAnd
	t[isa.BIT] = opBit
	t[isa.BIC] = opBic
	t[isa.BIS] = opBis
	t[isa.XOR] = opXor

	t[isa.RRC] = opRrc
	t[isa.RRA] = opRra
	t[isa.SWPB] = opSwpb
	t[isa.SXT] = opSxt
	t[isa.PUSH] = opPush
	t[isa.CALL] = opCall
	t[isa.RETI] = opReti

	t[isa.JNE] = opJcc
	t[isa.JEQ] = opJcc
	t[isa.JNC] = opJcc
	t[isa.JC] = opJcc
	t[isa.JN] = opJcc
	t[isa.JGE] = opJcc
	t[isa.JL] = opJcc
	t[isa.JMP] = opJcc

	return t
}
