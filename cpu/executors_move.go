/*
 * MSP430 - Move and compare instruction executors.
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

import "github.com/mcu430/msp430/isa"

// opMove implements MOV. It never computes new flags itself; if the
// destination happens to be SR (R2), the flags still change, simply
// because the word that was written to SR is interpreted as flags by
// every other register accessor, not because MOV computed anything.
func opMove(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	src, _, write, cycles, err := formatIOperands(e, ins, ext)
	if err != nil {
		return 0, err
	}
	write(src)
	return cycles, nil
}

// singleOperandExt resolves the one extension word a Format II
// instruction's operand may need. PUSH and CALL name the operand as a
// source (per SourceExtWords' constant-generator exemption); the
// read-modify-write instructions (RRC, RRA, SWPB, SXT) always consume
// an extension word when their mode structurally needs one.
func singleOperandExt(ins isa.Instruction, ext []uint16, isSource bool) *uint16 {
	var n int
	if isSource {
		n = isa.SourceExtWords(ins.DstReg, ins.DstMode)
	} else if isa.NeedsExtWord(ins.DstMode) {
		n = 1
	}
	if n == 0 || len(ext) == 0 {
		return nil
	}
	return &ext[0]
}

// opPush implements PUSH: SP -= 2, then the operand (read with the
// constant generator live, since it is source-only here) is stored at
// the new SP. SP always moves by a full word even for PUSH.B.
func opPush(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	opExt := singleOperandExt(ins, ext, true)
	val, err := readSource(e.Regs, e.Mem, ins.DstReg, ins.DstMode, ins.ByteOp, opExt, e.strictStack)
	if err != nil {
		return 0, err
	}
	sp := e.Regs.SP()
	if e.strictStack && sp < 2 {
		return 0, &StackOverflowError{SP: sp}
	}
	sp -= 2
	e.Regs.SetSP(sp)
	if ins.ByteOp {
		e.Mem.WriteByte(sp, uint8(val))
	} else {
		e.Mem.WriteWord(sp, val)
	}
	return singleOperandCycles(classifySource(ins.DstReg, ins.DstMode)), nil
}

// opSwpb swaps the high and low bytes of a word operand. Real hardware
// does not support a byte-mode SWPB; this core always operates at
// word width regardless of the decoded B/W bit, matching the
// datasheet rather than the raw encoding.
func opSwpb(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	opExt := singleOperandExt(ins, ext, false)
	val, write, err := evalOperand(e.Regs, e.Mem, ins.DstReg, ins.DstMode, false, opExt, e.strictStack)
	if err != nil {
		return 0, err
	}
	write(val<<8 | val>>8)
	return singleOperandCycles(classifyMode(ins.DstMode)), nil
}

// opSxt sign-extends the low byte of the operand to a full word, again
// always at word width regardless of the decoded B/W bit.
func opSxt(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	opExt := singleOperandExt(ins, ext, false)
	val, write, err := evalOperand(e.Regs, e.Mem, ins.DstReg, ins.DstMode, false, opExt, e.strictStack)
	if err != nil {
		return 0, err
	}
	low := val & 0xFF
	result := low
	if low&0x80 != 0 {
		result |= 0xFF00
	}
	write(result)
	e.Regs.SetCarry(result != 0)
	e.Regs.SetArith(result, false)
	e.Regs.SetOverflow(false)
	return singleOperandCycles(classifyMode(ins.DstMode)), nil
}
