/*
 * MSP430 - Execution engine test cases.
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
	"testing"

	"github.com/mcu430/msp430/isa"
	"github.com/mcu430/msp430/memory"
	"github.com/mcu430/msp430/register"
)

func newTestRig() (*register.File, *memory.Memory) {
	return register.New(), memory.New()
}

func mustExecute(t *testing.T, ins isa.Instruction, regs *register.File, mem *memory.Memory, ext []uint16) uint32 {
	t.Helper()
	cycles, err := Execute(ins, regs, mem, ext)
	if err != nil {
		t.Fatalf("Execute(%+v): unexpected error: %v", ins, err)
	}
	return cycles
}

// S1: ADD Rn,Rm, word.
func TestScenarioAddWord(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(5, 0x1234)
	regs.Write(6, 0x5678)
	ins := isa.Instruction{Mnemonic: isa.ADD, Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 6, DstMode: isa.ModeRegister}
	cycles := mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(6); got != 0x68AC {
		t.Errorf("R6 = 0x%04X, expected 0x68AC", got)
	}
	if regs.Carry() || regs.Zero() || regs.Negative() || regs.Overflow() {
		t.Errorf("flags C=%v Z=%v N=%v V=%v, expected all clear", regs.Carry(), regs.Zero(), regs.Negative(), regs.Overflow())
	}
	if cycles != 1 {
		t.Errorf("cycles = %d, expected 1", cycles)
	}
}

// S2: ADD with unsigned carry.
func TestScenarioAddUnsignedCarry(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(5, 0xFFFF)
	regs.Write(4, 0x0001)
	ins := isa.Instruction{Mnemonic: isa.ADD, Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0x0000 {
		t.Errorf("R4 = 0x%04X, expected 0x0000", got)
	}
	if !regs.Carry() || !regs.Zero() || regs.Negative() || regs.Overflow() {
		t.Errorf("flags C=%v Z=%v N=%v V=%v, expected C=1 Z=1 N=0 V=0", regs.Carry(), regs.Zero(), regs.Negative(), regs.Overflow())
	}
}

// S3: ADD with signed overflow.
func TestScenarioAddSignedOverflow(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(5, 0x7FFF)
	regs.Write(4, 0x0001)
	ins := isa.Instruction{Mnemonic: isa.ADD, Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0x8000 {
		t.Errorf("R4 = 0x%04X, expected 0x8000", got)
	}
	if regs.Carry() || regs.Zero() || !regs.Negative() || !regs.Overflow() {
		t.Errorf("flags C=%v Z=%v N=%v V=%v, expected C=0 Z=0 N=1 V=1", regs.Carry(), regs.Zero(), regs.Negative(), regs.Overflow())
	}
}

// S4: SUB to zero; equal operands clear C (opSub's override of the
// hardware no-borrow convention, which would set C here).
func TestScenarioSubToZero(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(1, 0x1234)
	regs.Write(4, 0x1234)
	ins := isa.Instruction{Mnemonic: isa.SUB, Format: isa.FormatI, HasSrc: true, SrcReg: 1, SrcMode: isa.ModeRegister, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0x0000 {
		t.Errorf("R4 = 0x%04X, expected 0x0000", got)
	}
	if !regs.Zero() || regs.Carry() || regs.Overflow() {
		t.Errorf("flags Z=%v C=%v V=%v, expected Z=1 C=0 V=0", regs.Zero(), regs.Carry(), regs.Overflow())
	}
}

// S5: DEC from 0x0000.
func TestScenarioDecFromZero(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(4, 0x0000)
	ins := isa.Instruction{Mnemonic: isa.SUB, Format: isa.FormatI, HasSrc: true, SrcReg: 3, SrcMode: isa.ModeIndexed, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0xFFFF {
		t.Errorf("R4 = 0x%04X, expected 0xFFFF", got)
	}
	if regs.Zero() || !regs.Negative() || regs.Carry() || regs.Overflow() {
		t.Errorf("flags Z=%v N=%v C=%v V=%v, expected Z=0 N=1 C=0 V=0", regs.Zero(), regs.Negative(), regs.Carry(), regs.Overflow())
	}
}

// S6: DEC from 0x8000.
func TestScenarioDecFromSignBit(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(4, 0x8000)
	ins := isa.Instruction{Mnemonic: isa.SUB, Format: isa.FormatI, HasSrc: true, SrcReg: 3, SrcMode: isa.ModeIndexed, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0x7FFF {
		t.Errorf("R4 = 0x%04X, expected 0x7FFF", got)
	}
	if regs.Zero() || regs.Negative() || !regs.Carry() || !regs.Overflow() {
		t.Errorf("flags Z=%v N=%v C=%v V=%v, expected Z=0 N=0 C=1 V=1", regs.Zero(), regs.Negative(), regs.Carry(), regs.Overflow())
	}
}

// DEC from 0x0001 lands on a zero result, but carry is cleared only
// when decrementing from 0x0000; this is not that case, so C=1.
func TestScenarioDecFromOneCarriesDespiteZeroResult(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(4, 0x0001)
	ins := isa.Instruction{Mnemonic: isa.SUB, Format: isa.FormatI, HasSrc: true, SrcReg: 3, SrcMode: isa.ModeIndexed, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0x0000 {
		t.Errorf("R4 = 0x%04X, expected 0x0000", got)
	}
	if !regs.Zero() || regs.Negative() || !regs.Carry() || regs.Overflow() {
		t.Errorf("flags Z=%v N=%v C=%v V=%v, expected Z=1 N=0 C=1 V=0", regs.Zero(), regs.Negative(), regs.Carry(), regs.Overflow())
	}
}

// S7: MOV.B preserves the destination's high byte.
func TestScenarioMoveBytePreservesHighByte(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(1, 0x1234)
	regs.Write(3, 0x5678)
	ins := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, ByteOp: true, SrcReg: 1, SrcMode: isa.ModeRegister, DstReg: 3, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(3); got != 0x5634 {
		t.Errorf("R3 = 0x%04X, expected 0x5634", got)
	}
}

// S8: indirect-autoincrement word fetch.
func TestScenarioIndirectAutoincrement(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(5, 0x2000)
	regs.Write(6, 0x1234)
	mem.WriteByte(0x2000, 0x78)
	mem.WriteByte(0x2001, 0x56)
	ins := isa.Instruction{Mnemonic: isa.ADD, Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeIndirectInc, DstReg: 6, DstMode: isa.ModeRegister}
	cycles := mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(6); got != 0x68AC {
		t.Errorf("R6 = 0x%04X, expected 0x68AC", got)
	}
	if got := regs.Read(5); got != 0x2002 {
		t.Errorf("R5 = 0x%04X, expected 0x2002", got)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, expected 2", cycles)
	}
}

// S9: constant generator +4 via @R2, no memory access.
func TestScenarioConstantGeneratorPlus4(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(6, 0x1000)
	ins := isa.Instruction{Mnemonic: isa.ADD, Format: isa.FormatI, HasSrc: true, SrcReg: 2, SrcMode: isa.ModeIndirect, DstReg: 6, DstMode: isa.ModeRegister}
	cycles := mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(6); got != 0x1004 {
		t.Errorf("R6 = 0x%04X, expected 0x1004", got)
	}
	if cycles != 1 {
		t.Errorf("cycles = %d, expected 1", cycles)
	}
}

// S10: SWPB.
func TestScenarioSwpb(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(4, 0x1234)
	ins := isa.Instruction{Mnemonic: isa.SWPB, Format: isa.FormatII, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0x3412 {
		t.Errorf("R4 = 0x%04X, expected 0x3412", got)
	}
	if regs.Overflow() {
		t.Errorf("V = true, expected false")
	}
}

// S11: SXT of 0x80.
func TestScenarioSxt(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(4, 0x0080)
	ins := isa.Instruction{Mnemonic: isa.SXT, Format: isa.FormatII, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(4); got != 0xFF80 {
		t.Errorf("R4 = 0x%04X, expected 0xFF80", got)
	}
	if !regs.Negative() || regs.Zero() || !regs.Carry() || regs.Overflow() {
		t.Errorf("flags N=%v Z=%v C=%v V=%v, expected N=1 Z=0 C=1 V=0", regs.Negative(), regs.Zero(), regs.Carry(), regs.Overflow())
	}
}

// S12: JMP +10 from PC=0x1000. Execute never advances PC itself; the
// caller is expected to have already moved PC past the jump
// instruction, so regs.PC() here stands in for that post-fetch value.
func TestScenarioJmpForward(t *testing.T) {
	regs, mem := newTestRig()
	regs.SetPC(0x1000)
	ins := isa.Instruction{Mnemonic: isa.JMP, Format: isa.FormatIII, JumpOffset: 10}
	cycles := mustExecute(t, ins, regs, mem, nil)
	if got := regs.PC(); got != 0x1014 {
		t.Errorf("PC = 0x%04X, expected 0x1014", got)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, expected 2", cycles)
	}
}

// S13: JNE (JNZ) taken vs. not taken, offset -5.
func TestScenarioJneTakenAndNotTaken(t *testing.T) {
	regs, mem := newTestRig()
	regs.SetPC(0x1000)
	regs.SetZero(false)
	ins := isa.Instruction{Mnemonic: isa.JNE, Format: isa.FormatIII, JumpOffset: -5}
	cycles := mustExecute(t, ins, regs, mem, nil)
	if got := regs.PC(); got != 0x0FF6 {
		t.Errorf("taken: PC = 0x%04X, expected 0x0FF6", got)
	}
	if cycles != 2 {
		t.Errorf("taken: cycles = %d, expected 2", cycles)
	}

	regs.SetPC(0x1000)
	regs.SetZero(true)
	cycles = mustExecute(t, ins, regs, mem, nil)
	if got := regs.PC(); got != 0x1000 {
		t.Errorf("not taken: PC = 0x%04X, expected 0x1000", got)
	}
	if cycles != 2 {
		t.Errorf("not taken: cycles = %d, expected 2", cycles)
	}
}

// S14: PUSH/POP round-trip. POP Rn has no dedicated opcode on this
// architecture; it is MOV @SP+, Rn.
func TestScenarioPushPopRoundTrip(t *testing.T) {
	regs, mem := newTestRig()
	regs.SetSP(0x1000)
	regs.Write(4, 0x1234)

	push := isa.Instruction{Mnemonic: isa.PUSH, Format: isa.FormatII, DstReg: 4, DstMode: isa.ModeRegister}
	mustExecute(t, push, regs, mem, nil)

	pop := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, SrcReg: register.SP, SrcMode: isa.ModeIndirectInc, DstReg: 5, DstMode: isa.ModeRegister}
	mustExecute(t, pop, regs, mem, nil)

	if got := regs.SP(); got != 0x1000 {
		t.Errorf("SP = 0x%04X, expected 0x1000", got)
	}
	if got := regs.Read(5); got != 0x1234 {
		t.Errorf("R5 = 0x%04X, expected 0x1234", got)
	}
}

// Property 2: every Execute call reports at least one cycle.
func TestCycleFloor(t *testing.T) {
	regs, mem := newTestRig()
	ins := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, SrcReg: 3, SrcMode: isa.ModeRegister, DstReg: 4, DstMode: isa.ModeRegister}
	cycles := mustExecute(t, ins, regs, mem, nil)
	if cycles < 1 {
		t.Errorf("cycles = %d, expected >= 1", cycles)
	}
}

// Property 3: a byte-op with a register destination leaves the
// destination's high byte untouched.
func TestByteOpPreservesHighByte(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(5, 0x00FF)
	regs.Write(6, 0xABCD)
	ins := isa.Instruction{Mnemonic: isa.ADD, Format: isa.FormatI, HasSrc: true, ByteOp: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 6, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(6); got&0xFF00 != 0xAB00 {
		t.Errorf("R6 high byte = 0x%02X, expected 0xAB", got>>8)
	}
}

// Property 8: a constant-generator encoding in the destination field
// writes to the named register ordinarily; it never substitutes a
// constant there.
func TestDestinationNeverUsesConstantGenerator(t *testing.T) {
	regs, mem := newTestRig()
	regs.Write(5, 0x0042)
	ins := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 3, DstMode: isa.ModeRegister}
	mustExecute(t, ins, regs, mem, nil)
	if got := regs.Read(3); got != 0x0042 {
		t.Errorf("R3 (CG register as destination) = 0x%04X, expected 0x0042", got)
	}
}

func TestUnimplementedMnemonicError(t *testing.T) {
	regs, mem := newTestRig()
	ins := isa.Instruction{Mnemonic: isa.Mnemonic(999), Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 6, DstMode: isa.ModeRegister}
	if _, err := Execute(ins, regs, mem, nil); err == nil {
		t.Fatal("Execute with an unregistered mnemonic: expected an error, got nil")
	}
}

func TestStepAdvancesPastExtensionWords(t *testing.T) {
	regs, mem := newTestRig()
	e := NewEngine(regs, mem)
	// MOV #0x1234, R5 (src = PC, Immediate), one extension word.
	ins := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, SrcReg: register.PC, SrcMode: isa.ModeImmediate, DstReg: 5, DstMode: isa.ModeRegister}
	word, _, err := isa.Encode(ins)
	if err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}
	mem.WriteWord(0x0000, word)
	mem.WriteWord(0x0002, 0x1234)
	regs.SetPC(0x0000)

	if _, _, err := e.Step(); err != nil {
		t.Fatalf("Step: unexpected error: %v", err)
	}
	if got := regs.Read(5); got != 0x1234 {
		t.Errorf("R5 = 0x%04X, expected 0x1234", got)
	}
	if got := regs.PC(); got != 0x0004 {
		t.Errorf("PC = 0x%04X, expected 0x0004 (past the instruction and its extension word)", got)
	}
}

func TestBreakpointStopsBeforeInstructionRuns(t *testing.T) {
	regs, mem := newTestRig()
	e := NewEngine(regs, mem)
	regs.Write(5, 0x0042)
	ins := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: 6, DstMode: isa.ModeRegister}
	word, _, err := isa.Encode(ins)
	if err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}
	mem.WriteWord(0x0000, word)
	regs.SetPC(0x0000)
	e.AddBreakpoint(0x0000)

	_, _, err = e.Step()
	var hit *BreakpointHit
	if err == nil {
		t.Fatal("Step at an armed breakpoint: expected BreakpointHit, got nil")
	}
	if h, ok := err.(*BreakpointHit); !ok {
		t.Fatalf("Step error is %T, expected *BreakpointHit", err)
	} else {
		hit = h
	}
	if hit.PC != 0x0000 {
		t.Errorf("BreakpointHit.PC = 0x%04X, expected 0x0000", hit.PC)
	}
	if got := regs.Read(6); got != 0 {
		t.Errorf("R6 = 0x%04X, expected 0: the instruction must not run when the breakpoint stops it", got)
	}
}

func TestWatchpointFiresAfterWrite(t *testing.T) {
	regs, mem := newTestRig()
	e := NewEngine(regs, mem)
	regs.Write(5, 0xAA)

	// MOV.B R5, &0x2000
	target := isa.Instruction{Mnemonic: isa.MOV, Format: isa.FormatI, HasSrc: true, ByteOp: true, SrcReg: 5, SrcMode: isa.ModeRegister, DstReg: register.SR, DstMode: isa.ModeAbsolute}
	word, numExt, err := isa.Encode(target)
	if err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}
	mem.WriteWord(0x0000, word)
	if numExt > 0 {
		mem.WriteWord(0x0002, 0x2000)
	}
	regs.SetPC(0x0000)
	e.AddWatchpoint(0x2000)

	_, _, err = e.Step()
	if err == nil {
		t.Fatal("Step with an armed watchpoint on the written byte: expected WatchpointHit, got nil")
	}
	hit, ok := err.(*WatchpointHit)
	if !ok {
		t.Fatalf("Step error is %T, expected *WatchpointHit", err)
	}
	if hit.Addr != 0x2000 || hit.New != 0xAA {
		t.Errorf("WatchpointHit = %+v, expected Addr=0x2000 New=0xAA", hit)
	}
}
