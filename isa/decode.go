/*
 * MSP430 - Instruction word decoder.
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

// condMnemonic maps the 3-bit Format III condition field to a jump
// mnemonic.
var condMnemonic = [8]Mnemonic{JNE, JEQ, JNC, JC, JN, JGE, JL, JMP}

// formatIMnemonic maps the Format I opcode nibble (4-F) to a mnemonic.
var formatIMnemonic = map[uint8]Mnemonic{
	0x4: MOV, 0x5: ADD, 0x6: ADDC, 0x7: SUBC, 0x8: SUB, 0x9: CMP,
	0xA: DADD, 0xB: BIT, 0xC: BIC, 0xD: BIS, 0xE: XOR, 0xF: AND,
}

// formatIIMnemonic maps the 3-bit Format II opcode field to a
// mnemonic. The top two bits of this field (bits 9-8) are what
// separate the 0x10/0x11/0x12/0x13 opcode-byte groups; the LSB
// (bit 7, the top bit of the low byte) is what further separates RRC
// from SWPB and RRA from SXT within a group. Decoding the full 3-bit
// field directly keeps both facts bit-exact in one table instead of
// two separate checks.
var formatIIMnemonic = [8]Mnemonic{RRC, SWPB, RRA, SXT, PUSH, CALL, RETI, 0}

// PeekLength reports how many extension words (0, 1, or 2) the
// instruction word requires, without needing those words in hand yet.
// The host uses this to know how many words to fetch from memory
// before calling Decode.
func PeekLength(word uint16) (int, error) {
	switch word >> 13 {
	case 0: // Not Format I (bits 15-12 >= 4); may be Format II, checked below.
	case 1: // Format III, 001xxxxxxxxxxxxx
		return 0, nil
	}

	switch {
	case word>>12 >= 0x4:
		return formatILength(word), nil
	case word>>10 == 0x04:
		return formatIILength(word), nil
	case word>>13 == 0x1:
		return 0, nil
	default:
		return 0, &InvalidInstructionError{Word: word, Reason: "undefined opcode"}
	}
}

func NeedsExtWord(mode AddrMode) bool {
	switch mode {
	case ModeIndexed, ModeImmediate, ModeAbsolute, ModeSymbolic:
		return true
	default:
		return false
	}
}

// SourceExtWords reports how many extension words a source operand
// consumes. It differs from NeedsExtWord only for R3 in indexed mode:
// structurally that is ModeIndexed, but as a source it is the constant
// generator's "+1" entry, which never reads an extension word. The
// exemption only applies to sources; a destination (or a read-modify
// write Format II operand) that happens to name R3 in indexed mode is
// ordinary indexed addressing and still consumes its extension word.
func SourceExtWords(reg uint8, mode AddrMode) int {
	if reg == 3 && mode == ModeIndexed {
		return 0
	}
	if NeedsExtWord(mode) {
		return 1
	}
	return 0
}

// decodeMode resolves a 2-bit (source) or 1-bit (destination) mode
// field against the operand register into a structural AddrMode. The
// constant-generator short circuit for R2/R3 is an execution-time
// concern (see cpu package), not a decode-time one: R2/Indirect and
// R3/anything still decode to ordinary AddrMode values here.
func decodeMode(reg uint8, bits uint8) AddrMode {
	switch bits {
	case 0:
		return ModeRegister
	case 1:
		switch reg {
		case 0:
			return ModeSymbolic
		case 2:
			return ModeAbsolute
		default:
			return ModeIndexed
		}
	case 2:
		return ModeIndirect
	default: // 3
		if reg == 0 {
			return ModeImmediate
		}
		return ModeIndirectInc
	}
}

func formatILength(word uint16) int {
	rsrc := uint8(word>>8) & 0xF
	ad := uint8(word>>7) & 0x1
	as := uint8(word>>4) & 0x3
	rdst := uint8(word) & 0xF

	n := SourceExtWords(rsrc, decodeMode(rsrc, as))
	if NeedsExtWord(decodeMode(rdst, ad)) {
		n++
	}
	return n
}

func formatIILength(word uint16) int {
	op3 := uint8(word>>7) & 0x7
	ad2 := uint8(word>>4) & 0x3
	rdst := uint8(word) & 0xF
	if op3 == 6 { // RETI has no operand at all.
		return 0
	}
	mode := decodeMode(rdst, ad2)
	if op3 == 4 || op3 == 5 { // PUSH, CALL: the operand is a source.
		return SourceExtWords(rdst, mode)
	}
	if NeedsExtWord(mode) {
		return 1
	}
	return 0
}

// Decode turns an instruction word plus its extension words into a
// typed Instruction. It is a pure function: it never touches memory
// or registers. len(ext) must be at least the instruction's NumExt;
// Decode itself does not interpret the extension values, only counts
// how many the structure requires.
func Decode(word uint16, ext []uint16) (Instruction, error) {
	switch {
	case word>>12 >= 0x4:
		return decodeFormatI(word, ext)
	case word>>10 == 0x04:
		return decodeFormatII(word, ext)
	case word>>13 == 0x1:
		return decodeFormatIII(word)
	default:
		return Instruction{}, &InvalidInstructionError{Word: word, Reason: "undefined opcode"}
	}
}

func decodeFormatI(word uint16, ext []uint16) (Instruction, error) {
	opNibble := uint8(word >> 12)
	mnem, ok := formatIMnemonic[opNibble]
	if !ok {
		return Instruction{}, &InvalidInstructionError{Word: word, Reason: "undefined format I opcode"}
	}

	rsrc := uint8(word>>8) & 0xF
	ad := uint8(word>>7) & 0x1
	bw := word&0x0040 != 0
	as := uint8(word>>4) & 0x3
	rdst := uint8(word) & 0xF

	srcMode := decodeMode(rsrc, as)
	dstMode := decodeMode(rdst, ad)

	n := SourceExtWords(rsrc, srcMode)
	if NeedsExtWord(dstMode) {
		n++
	}
	if len(ext) < n {
		return Instruction{}, fmt.Errorf("isa: decode 0x%04X needs %d extension words, got %d", word, n, len(ext))
	}

	return Instruction{
		Word:     word,
		Mnemonic: mnem,
		Format:   FormatI,
		ByteOp:   bw,
		SrcReg:   rsrc,
		SrcMode:  srcMode,
		HasSrc:   true,
		DstReg:   rdst,
		DstMode:  dstMode,
		NumExt:   n,
	}, nil
}

func decodeFormatII(word uint16, ext []uint16) (Instruction, error) {
	op3 := uint8(word>>7) & 0x7
	mnem := formatIIMnemonic[op3]
	if mnem == 0 {
		return Instruction{}, &InvalidInstructionError{Word: word, Reason: "reserved format II opcode"}
	}

	bw := word&0x0040 != 0
	ad2 := uint8(word>>4) & 0x3
	rdst := uint8(word) & 0xF

	if mnem == RETI {
		return Instruction{
			Word:     word,
			Mnemonic: RETI,
			Format:   FormatII,
			ByteOp:   false,
		}, nil
	}

	dstMode := decodeMode(rdst, ad2)
	var n int
	if mnem == PUSH || mnem == CALL {
		n = SourceExtWords(rdst, dstMode)
	} else if NeedsExtWord(dstMode) {
		n = 1
	}
	if len(ext) < n {
		return Instruction{}, fmt.Errorf("isa: decode 0x%04X needs %d extension words, got %d", word, n, len(ext))
	}

	return Instruction{
		Word:     word,
		Mnemonic: mnem,
		Format:   FormatII,
		ByteOp:   bw,
		DstReg:   rdst,
		DstMode:  dstMode,
		NumExt:   n,
	}, nil
}

func decodeFormatIII(word uint16) (Instruction, error) {
	cond := uint8(word>>10) & 0x7
	raw := word & 0x03FF
	offset := int16(raw)
	if raw&0x0200 != 0 { // Sign extend the 10-bit field.
		offset -= 1024
	}
	if offset < -511 || offset > 512 {
		return Instruction{}, &InvalidInstructionError{Word: word, Reason: "jump offset out of range"}
	}

	return Instruction{
		Word:       word,
		Mnemonic:   condMnemonic[cond],
		Format:     FormatIII,
		JumpOffset: offset,
	}, nil
}
