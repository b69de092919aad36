/*
 * MSP430 - Operand resolution helpers.
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

// splitExt mirrors the instruction's own encoding order: a source
// extension word, if any, precedes the destination's.
func splitExt(ins isa.Instruction, ext []uint16) (src, dst *uint16) {
	i := 0
	if ins.HasSrc && isa.SourceExtWords(ins.SrcReg, ins.SrcMode) > 0 {
		if i < len(ext) {
			src = &ext[i]
		}
		i++
	}
	if isa.NeedsExtWord(ins.DstMode) {
		if i < len(ext) {
			dst = &ext[i]
		}
	}
	return src, dst
}

// formatIOperands resolves both operands of a double-operand
// instruction: the latched source value, the current destination
// value (for read-modify-write mnemonics; MOV/CMP/BIT-style callers
// simply ignore it), a write-back closure for the result, and the
// cycle count the combination costs.
func formatIOperands(e *Engine, ins isa.Instruction, ext []uint16) (srcVal, dstVal uint16, write func(uint16), cycles int, err error) {
	srcExt, dstExt := splitExt(ins, ext)

	srcVal, err = readSource(e.Regs, e.Mem, ins.SrcReg, ins.SrcMode, ins.ByteOp, srcExt, e.strictStack)
	if err != nil {
		return 0, 0, nil, 0, err
	}

	if ins.DstMode == isa.ModeRegister {
		dstVal = maskByte(e.Regs.Read(int(ins.DstReg)), ins.ByteOp)
	} else {
		dstVal = readOperand(e.Mem, destAddr(e.Regs, ins.DstReg, ins.DstMode, dstExt), ins.ByteOp)
	}

	write = func(v uint16) {
		writeDest(e.Regs, e.Mem, ins.DstReg, ins.DstMode, ins.ByteOp, dstExt, v)
	}

	srcClass := classifySource(ins.SrcReg, ins.SrcMode)
	dstClass := classifyMode(ins.DstMode)
	cycles = doubleOperandCycles(ins.Mnemonic, srcClass, dstClass)
	return srcVal, dstVal, write, cycles, nil
}

func destAddr(regs *register.File, reg uint8, mode isa.AddrMode, ext *uint16) uint16 {
	switch mode {
	case isa.ModeIndexed:
		return regs.Read(int(reg)) + extValue(ext)
	case isa.ModeAbsolute:
		return extValue(ext)
	case isa.ModeSymbolic:
		return regs.PC() + extValue(ext)
	default:
		return 0
	}
}
