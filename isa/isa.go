/*
 * MSP430 - Instruction set constants and decoded instruction model.
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

// Package isa names the MSP430 instruction formats, addressing modes,
// and mnemonics, and decodes/encodes/disassembles instruction words.
// It never touches memory or registers; it is a pure model of the
// instruction stream, mirroring the teacher's opcodemap/disassemble
// split but folded into one small package for a 16-bit core.
package isa

// Format identifies one of the three MSP430 instruction encodings.
type Format int

const (
	FormatI   Format = iota + 1 // Double-operand.
	FormatII                    // Single-operand.
	FormatIII                   // Jump.
)

// AddrMode is one of the seven MSP430 addressing modes.
type AddrMode int

const (
	ModeRegister    AddrMode = iota // Rn
	ModeIndexed                     // X(Rn)
	ModeIndirect                    // @Rn
	ModeIndirectInc                 // @Rn+
	ModeImmediate                   // #N (encoded as @PC+)
	ModeAbsolute                    // &ADDR (encoded via R2, Ad=1)
	ModeSymbolic                    // ADDR (encoded via R0/PC, Ad=1)
)

// Mnemonic enumerates every base and emulated MSP430 mnemonic the core
// recognises. Emulated forms (INC, DEC, ...) are distinct values used
// only for diagnostics/disassembly; Decode always resolves to the
// underlying base instruction an executor actually runs.
type Mnemonic int

const (
	MOV Mnemonic = iota + 1
	ADD
	ADDC
	SUBC
	SUB
	CMP
	DADD
	BIT
	BIC
	BIS
	XOR
	AND

	RRC
	SWPB
	RRA
	SXT
	PUSH
	CALL
	RETI

	JNE
	JEQ
	JNC
	JC
	JN
	JGE
	JL
	JMP

	// Emulated forms: Decode never produces these directly, since each
	// is a particular operand pattern of a base instruction above (see
	// emulatedForm in disasm.go). They exist so Disassemble can print
	// the conventional mnemonic instead of its literal expansion.
	INC
	DEC
	CLR
	TST
	NOP
	RET
	BR
)

var mnemonicNames = map[Mnemonic]string{
	MOV: "MOV", ADD: "ADD", ADDC: "ADDC", SUBC: "SUBC", SUB: "SUB",
	CMP: "CMP", DADD: "DADD", BIT: "BIT", BIC: "BIC", BIS: "BIS",
	XOR: "XOR", AND: "AND",
	RRC: "RRC", SWPB: "SWPB", RRA: "RRA", SXT: "SXT", PUSH: "PUSH",
	CALL: "CALL", RETI: "RETI",
	JNE: "JNE", JEQ: "JEQ", JNC: "JNC", JC: "JC", JN: "JN", JGE: "JGE",
	JL: "JL", JMP: "JMP",
	INC: "INC", DEC: "DEC", CLR: "CLR", TST: "TST", NOP: "NOP",
	RET: "RET", BR: "BR",
}

// String returns the uppercase base mnemonic name.
func (m Mnemonic) String() string {
	if s, ok := mnemonicNames[m]; ok {
		return s
	}
	return "???"
}

// Instruction is the typed, decoded form of one MSP430 instruction
// word plus however many extension words it consumes. It never holds
// the extension word *values*; those are threaded separately through
// Execute/Disassemble, per the core's external contract.
type Instruction struct {
	Word       uint16
	Mnemonic   Mnemonic
	Format     Format
	ByteOp     bool
	SrcReg     uint8    // Format I only.
	SrcMode    AddrMode // Format I only.
	HasSrc     bool     // False for Format II/III.
	DstReg     uint8    // Format I/II.
	DstMode    AddrMode // Format I/II.
	JumpOffset int16    // Format III: signed word offset, -511..+512.
	NumExt     int      // Number of extension words this instruction consumes (0-2).
}

// Len returns the instruction's total length in words, including
// extension words: 1 + NumExt.
func (ins Instruction) Len() int {
	return 1 + ins.NumExt
}
