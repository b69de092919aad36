/*
 * MSP430 - Instruction encoder.
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

var mnemonicFormatIOpcode = map[Mnemonic]uint8{
	MOV: 0x4, ADD: 0x5, ADDC: 0x6, SUBC: 0x7, SUB: 0x8, CMP: 0x9,
	DADD: 0xA, BIT: 0xB, BIC: 0xC, BIS: 0xD, XOR: 0xE, AND: 0xF,
}

var mnemonicFormatIIOp3 = map[Mnemonic]uint8{
	RRC: 0, SWPB: 1, RRA: 2, SXT: 3, PUSH: 4, CALL: 5, RETI: 6,
}

var mnemonicCond = map[Mnemonic]uint8{
	JNE: 0, JEQ: 1, JNC: 2, JC: 3, JN: 4, JGE: 5, JL: 6, JMP: 7,
}

// encodeMode is the inverse of decodeMode: given the structural
// AddrMode, return the raw 2-bit (or 1-bit, for a destination) mode
// field. The register that disambiguates Symbolic/Absolute/Immediate
// is encoded separately by the caller.
func encodeMode(mode AddrMode) (uint8, error) {
	switch mode {
	case ModeRegister:
		return 0, nil
	case ModeIndexed, ModeSymbolic, ModeAbsolute:
		return 1, nil
	case ModeIndirect:
		return 2, nil
	case ModeIndirectInc, ModeImmediate:
		return 3, nil
	default:
		return 0, fmt.Errorf("isa: unknown addressing mode %d", mode)
	}
}

// Encode is the inverse of Decode: it reconstructs the instruction
// word (and reports how many extension words the caller must still
// supply) from a typed Instruction. It is used by the decode/encode
// round-trip test and by tests that place instruction words in memory.
func Encode(ins Instruction) (word uint16, numExt int, err error) {
	switch ins.Format {
	case FormatI:
		return encodeFormatI(ins)
	case FormatII:
		return encodeFormatII(ins)
	case FormatIII:
		return encodeFormatIII(ins)
	default:
		return 0, 0, fmt.Errorf("isa: unknown format %d", ins.Format)
	}
}

func encodeFormatI(ins Instruction) (uint16, int, error) {
	opNibble, ok := mnemonicFormatIOpcode[ins.Mnemonic]
	if !ok {
		return 0, 0, fmt.Errorf("isa: %s is not a format I mnemonic", ins.Mnemonic)
	}
	as, err := encodeMode(ins.SrcMode)
	if err != nil {
		return 0, 0, err
	}
	ad, err := encodeMode(ins.DstMode)
	if err != nil {
		return 0, 0, err
	}
	if ad > 1 {
		return 0, 0, fmt.Errorf("isa: destination mode %d is not encodable in the 1-bit Ad field", ins.DstMode)
	}

	word := uint16(opNibble)<<12 |
		uint16(ins.SrcReg&0xF)<<8 |
		uint16(ad&0x1)<<7 |
		boolBit(ins.ByteOp)<<6 |
		uint16(as&0x3)<<4 |
		uint16(ins.DstReg & 0xF)

	n := SourceExtWords(ins.SrcReg, ins.SrcMode)
	if NeedsExtWord(ins.DstMode) {
		n++
	}
	return word, n, nil
}

func encodeFormatII(ins Instruction) (uint16, int, error) {
	op3, ok := mnemonicFormatIIOp3[ins.Mnemonic]
	if !ok {
		return 0, 0, fmt.Errorf("isa: %s is not a format II mnemonic", ins.Mnemonic)
	}

	if ins.Mnemonic == RETI {
		return 0x1300, 0, nil
	}

	ad2, err := encodeMode(ins.DstMode)
	if err != nil {
		return 0, 0, err
	}

	word := uint16(0x04)<<10 |
		uint16(op3&0x7)<<7 |
		boolBit(ins.ByteOp)<<6 |
		uint16(ad2&0x3)<<4 |
		uint16(ins.DstReg & 0xF)

	var n int
	if ins.Mnemonic == PUSH || ins.Mnemonic == CALL {
		n = SourceExtWords(ins.DstReg, ins.DstMode)
	} else if NeedsExtWord(ins.DstMode) {
		n = 1
	}
	return word, n, nil
}

func encodeFormatIII(ins Instruction) (uint16, int, error) {
	cond, ok := mnemonicCond[ins.Mnemonic]
	if !ok {
		return 0, 0, fmt.Errorf("isa: %s is not a jump mnemonic", ins.Mnemonic)
	}
	if ins.JumpOffset < -511 || ins.JumpOffset > 512 {
		return 0, 0, &InvalidInstructionError{Reason: "jump offset out of range"}
	}
	raw := uint16(ins.JumpOffset) & 0x03FF
	word := uint16(0x1)<<13 | uint16(cond&0x7)<<10 | raw
	return word, 0, nil
}

func boolBit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
