/*
 * MSP430 - Jump and subroutine instruction executors.
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
	"github.com/mcu430/msp430/isa"
	"github.com/mcu430/msp430/register"
)

// opCall implements CALL: the target address is read as an ordinary
// source operand (constant generator included, as for PUSH), the
// return address (PC as already advanced past this instruction) is
// pushed, and PC is set to the target. CALL has no byte-mode form.
func opCall(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	opExt := singleOperandExt(ins, ext, true)
	target, err := readSource(e.Regs, e.Mem, ins.DstReg, ins.DstMode, false, opExt, e.strictStack)
	if err != nil {
		return 0, err
	}
	sp := e.Regs.SP()
	if e.strictStack && sp < 2 {
		return 0, &StackOverflowError{SP: sp}
	}
	sp -= 2
	e.Regs.SetSP(sp)
	e.Mem.WriteWord(sp, e.Regs.PC())
	e.Regs.SetPC(target)
	return singleOperandCycles(classifySource(ins.DstReg, ins.DstMode)), nil
}

// opReti pops SR then PC, in that order, per the MSP430 interrupt
// return convention. Its cost isn't one of the dominant combinations
// the published summary table lists; 5 matches the full SLAU445
// Format II table entry for RETI.
func opReti(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	sp := e.Regs.SP()
	if e.strictStack && uint32(sp)+4 > 0xFFFF {
		return 0, &StackUnderflowError{SP: sp}
	}
	sr := e.Mem.ReadWord(sp)
	sp += 2
	pc := e.Mem.ReadWord(sp)
	sp += 2
	e.Regs.SetSR(sr)
	e.Regs.SetSP(sp)
	e.Regs.SetPC(pc)
	return 5, nil
}

// opJcc covers JMP and all seven conditional jumps: they differ only
// in which flags gate the branch.
func opJcc(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	if jumpTaken(ins.Mnemonic, e.Regs) {
		e.Regs.SetPC(e.Regs.PC() + uint16(ins.JumpOffset*2))
	}
	return 2, nil
}

func jumpTaken(m isa.Mnemonic, regs *register.File) bool {
	switch m {
	case isa.JNE:
		return !regs.Zero()
	case isa.JEQ:
		return regs.Zero()
	case isa.JNC:
		return !regs.Carry()
	case isa.JC:
		return regs.Carry()
	case isa.JN:
		return regs.Negative()
	case isa.JGE:
		return regs.Negative() == regs.Overflow()
	case isa.JL:
		return regs.Negative() != regs.Overflow()
	case isa.JMP:
		return true
	default:
		return false
	}
}
