/*
 * MSP430 - Instruction disassembler.
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

package isa

import "fmt"

// Disassemble renders the instruction as MSP430 assembly text. ext
// holds the instruction's extension word values in encoding order
// (source extension before destination extension, per the core's
// extension-word ordering rule); pass nil or a short slice when the
// extension words are not yet known and the operand should render
// symbolically (e.g. "X(Rn)" instead of "0x1234(Rn)").
func (ins Instruction) Disassemble(ext []uint16) string {
	switch ins.Format {
	case FormatI:
		return ins.disassembleFormatI(ext)
	case FormatII:
		return ins.disassembleFormatII(ext)
	case FormatIII:
		return ins.disassembleFormatIII()
	default:
		return "???"
	}
}

func mnemonicText(m Mnemonic, byteOp bool) string {
	if byteOp {
		return m.String() + ".B"
	}
	return m.String()
}

func (ins Instruction) disassembleFormatI(ext []uint16) string {
	if m, ok := emulatedForm(ins); ok {
		if m == NOP || m == RET {
			return m.String()
		}
		srcExt, dstExt := splitExt(ins.SrcReg, ins.SrcMode, ins.DstMode, ext)
		if m == BR {
			src := formatOperand(ins.SrcReg, ins.SrcMode, srcExt, true)
			return fmt.Sprintf("BR %s", src)
		}
		dst := formatOperand(ins.DstReg, ins.DstMode, dstExt, false)
		return fmt.Sprintf("%s %s", mnemonicText(m, ins.ByteOp), dst)
	}

	srcExt, dstExt := splitExt(ins.SrcReg, ins.SrcMode, ins.DstMode, ext)
	src := formatOperand(ins.SrcReg, ins.SrcMode, srcExt, true)
	dst := formatOperand(ins.DstReg, ins.DstMode, dstExt, false)
	return fmt.Sprintf("%s %s, %s", mnemonicText(ins.Mnemonic, ins.ByteOp), src, dst)
}

// emulatedForm recognises the handful of Format I operand patterns the
// assembler conventionally prints under a shorter emulated mnemonic
// instead of their literal expansion: INC/DEC (ADD/SUB #1,dst), CLR/TST
// (MOV/CMP #0,dst), NOP (MOV #0,R3, a write to the constant-generator
// register that has no other effect), RET (MOV @SP+,PC) and BR (MOV
// src,PC). The decoder never produces these as distinct Mnemonic
// values; they are purely a disassembly-time rendering choice, per the
// instruction set's emulated-instruction convention.
// Register-file indices for the four architecturally special
// registers. isa deliberately does not import the register package
// (it models the instruction stream only), so these mirror that
// package's PC/SP/SR/CG constants rather than sharing them.
const (
	regPC = 0
	regSP = 1
	regCG = 3
)

func emulatedForm(ins Instruction) (Mnemonic, bool) {
	cg, isCG := ConstantGeneratorValue(ins.SrcReg, ins.SrcMode)

	switch ins.Mnemonic {
	case MOV:
		if isCG && cg == 0 && ins.DstReg == regCG && ins.DstMode == ModeRegister {
			return NOP, true
		}
		if isCG && cg == 0 {
			return CLR, true
		}
		if ins.DstReg == regPC && ins.DstMode == ModeRegister {
			if ins.SrcReg == regSP && ins.SrcMode == ModeIndirectInc {
				return RET, true
			}
			return BR, true
		}
	case ADD:
		if isCG && cg == 1 {
			return INC, true
		}
	case SUB:
		if isCG && cg == 1 {
			return DEC, true
		}
	case CMP:
		if isCG && cg == 0 {
			return TST, true
		}
	}
	return 0, false
}

func (ins Instruction) disassembleFormatII(ext []uint16) string {
	if ins.Mnemonic == RETI {
		return "RETI"
	}
	isSource := ins.Mnemonic == PUSH || ins.Mnemonic == CALL
	needsExt := NeedsExtWord(ins.DstMode)
	if isSource {
		needsExt = SourceExtWords(ins.DstReg, ins.DstMode) > 0
	}
	var opExt *uint16
	if len(ext) > 0 && needsExt {
		opExt = &ext[0]
	}
	operand := formatOperand(ins.DstReg, ins.DstMode, opExt, isSource)
	return fmt.Sprintf("%s %s", mnemonicText(ins.Mnemonic, ins.ByteOp), operand)
}

func (ins Instruction) disassembleFormatIII() string {
	switch {
	case ins.JumpOffset == 0:
		return fmt.Sprintf("%s 0", ins.Mnemonic)
	case ins.JumpOffset > 0:
		return fmt.Sprintf("%s +%d", ins.Mnemonic, ins.JumpOffset)
	default:
		return fmt.Sprintf("%s %d", ins.Mnemonic, ins.JumpOffset)
	}
}

func splitExt(srcReg uint8, srcMode, dstMode AddrMode, ext []uint16) (src, dst *uint16) {
	i := 0
	if SourceExtWords(srcReg, srcMode) > 0 {
		if i < len(ext) {
			src = &ext[i]
		}
		i++
	}
	if NeedsExtWord(dstMode) {
		if i < len(ext) {
			dst = &ext[i]
		}
	}
	return src, dst
}

// formatOperand renders one operand. For source operands on R2/R3 it
// prints the constant-generator's assembler-conventional immediate
// form (#0, #1, #2, #4, #8, #-1) rather than the raw encoding, since
// that is what a reader recognizes; destinations never take this path
// because the constant generator never applies to them.
func formatOperand(reg uint8, mode AddrMode, ext *uint16, isSource bool) string {
	if isSource {
		if s, ok := constGenText(reg, mode); ok {
			return s
		}
	}

	switch mode {
	case ModeRegister:
		return fmt.Sprintf("R%d", reg)
	case ModeIndirect:
		return fmt.Sprintf("@R%d", reg)
	case ModeIndirectInc:
		return fmt.Sprintf("@R%d+", reg)
	case ModeIndexed:
		if ext != nil {
			return fmt.Sprintf("0x%04X(R%d)", *ext, reg)
		}
		return fmt.Sprintf("X(R%d)", reg)
	case ModeImmediate:
		if ext != nil {
			return fmt.Sprintf("#0x%04X", *ext)
		}
		return "#N"
	case ModeAbsolute:
		if ext != nil {
			return fmt.Sprintf("&0x%04X", *ext)
		}
		return "&ADDR"
	case ModeSymbolic:
		if ext != nil {
			return fmt.Sprintf("0x%04X", *ext)
		}
		return "ADDR"
	default:
		return "?"
	}
}

func constGenText(reg uint8, mode AddrMode) (string, bool) {
	val, ok := ConstantGeneratorValue(reg, mode)
	if !ok {
		return "", false
	}
	if val == 0xFFFF {
		return "#-1", true
	}
	return fmt.Sprintf("#%d", val), true
}
