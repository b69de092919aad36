/*
 * MSP430 - Addressing mode evaluator.
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
	"github.com/mcu430/msp430/memory"
	"github.com/mcu430/msp430/register"
)

// readSource evaluates a source operand: constant-generator short
// circuit first, then the seven addressing modes. It returns the
// latched value (zero-extended low byte for byte ops) and mutates the
// source register for Indirect-autoincrement after the value is
// latched. It does not count cycles; the executors charge those via
// doubleOperandCycles/singleOperandCycles.
func readSource(regs *register.File, mem *memory.Memory, reg uint8, mode isa.AddrMode, byteOp bool, ext *uint16, strict bool) (uint16, error) {
	if val, ok := isa.ConstantGeneratorValue(reg, mode); ok {
		return val, nil
	}

	switch mode {
	case isa.ModeRegister:
		return maskByte(regs.Read(int(reg)), byteOp), nil

	case isa.ModeIndirect:
		return readOperand(mem, regs.Read(int(reg)), byteOp), nil

	case isa.ModeIndirectInc:
		addr := regs.Read(int(reg))
		width := uint16(2)
		if byteOp {
			width = 1
		}
		if strict && reg == register.SP && uint32(addr)+uint32(width) > 0xFFFF {
			return 0, &StackUnderflowError{SP: addr}
		}
		val := readOperand(mem, addr, byteOp)
		regs.Write(int(reg), addr+width)
		return val, nil

	case isa.ModeImmediate:
		return extValue(ext), nil

	case isa.ModeIndexed:
		ea := regs.Read(int(reg)) + extValue(ext)
		return readOperand(mem, ea, byteOp), nil

	case isa.ModeAbsolute:
		return readOperand(mem, extValue(ext), byteOp), nil

	case isa.ModeSymbolic:
		ea := regs.PC() + extValue(ext)
		return readOperand(mem, ea, byteOp), nil

	default:
		return 0, nil
	}
}

// writeDest stores val at a Format I destination operand. Only
// Register, Indexed, Absolute, and Symbolic are reachable here: the
// encoding's 1-bit Ad field cannot name Indirect, Indirect-autoincrement,
// or Immediate. Format II's richer 2-bit Ad field (which can) is
// handled by evalOperand instead.
func writeDest(regs *register.File, mem *memory.Memory, reg uint8, mode isa.AddrMode, byteOp bool, ext *uint16, val uint16) {
	switch mode {
	case isa.ModeRegister:
		regs.Write(int(reg), writebackRegister(regs.Read(int(reg)), val, byteOp))
	case isa.ModeIndexed:
		ea := regs.Read(int(reg)) + extValue(ext)
		writeOperand(mem, ea, val, byteOp)
	case isa.ModeAbsolute:
		writeOperand(mem, extValue(ext), val, byteOp)
	case isa.ModeSymbolic:
		ea := regs.PC() + extValue(ext)
		writeOperand(mem, ea, val, byteOp)
	}
}

// evalOperand resolves a single-operand (Format II) read-modify-write
// operand: it is read once, and the returned writeBack closure stores
// to the exact same register or effective address, even after
// Indirect-autoincrement has already advanced the register. Unlike
// readSource, it never applies the constant-generator rule: this
// operand is simultaneously a destination, and destinations never
// invoke the constant generator.
func evalOperand(regs *register.File, mem *memory.Memory, reg uint8, mode isa.AddrMode, byteOp bool, ext *uint16, strict bool) (uint16, func(uint16), error) {
	switch mode {
	case isa.ModeRegister:
		return maskByte(regs.Read(int(reg)), byteOp), func(v uint16) {
			regs.Write(int(reg), writebackRegister(regs.Read(int(reg)), v, byteOp))
		}, nil

	case isa.ModeIndirect:
		addr := regs.Read(int(reg))
		return readOperand(mem, addr, byteOp), func(v uint16) { writeOperand(mem, addr, v, byteOp) }, nil

	case isa.ModeIndirectInc:
		addr := regs.Read(int(reg))
		width := uint16(2)
		if byteOp {
			width = 1
		}
		if strict && reg == register.SP && uint32(addr)+uint32(width) > 0xFFFF {
			return 0, nil, &StackUnderflowError{SP: addr}
		}
		val := readOperand(mem, addr, byteOp)
		regs.Write(int(reg), addr+width)
		return val, func(v uint16) { writeOperand(mem, addr, v, byteOp) }, nil

	case isa.ModeIndexed:
		ea := regs.Read(int(reg)) + extValue(ext)
		return readOperand(mem, ea, byteOp), func(v uint16) { writeOperand(mem, ea, v, byteOp) }, nil

	case isa.ModeAbsolute:
		ea := extValue(ext)
		return readOperand(mem, ea, byteOp), func(v uint16) { writeOperand(mem, ea, v, byteOp) }, nil

	case isa.ModeSymbolic:
		ea := regs.PC() + extValue(ext)
		return readOperand(mem, ea, byteOp), func(v uint16) { writeOperand(mem, ea, v, byteOp) }, nil

	default:
		return 0, func(uint16) {}, nil
	}
}

func extValue(ext *uint16) uint16 {
	if ext == nil {
		return 0
	}
	return *ext
}

func maskByte(v uint16, byteOp bool) uint16 {
	if byteOp {
		return v & 0x00FF
	}
	return v
}

// writebackRegister applies the byte-op rule for register destinations:
// only the low eight bits change, the high byte is preserved.
func writebackRegister(old, val uint16, byteOp bool) uint16 {
	if byteOp {
		return (old & 0xFF00) | (val & 0x00FF)
	}
	return val
}

func readOperand(mem *memory.Memory, addr uint16, byteOp bool) uint16 {
	if byteOp {
		return uint16(mem.ReadByte(addr))
	}
	return mem.ReadWord(addr)
}

func writeOperand(mem *memory.Memory, addr uint16, val uint16, byteOp bool) {
	if byteOp {
		mem.WriteByte(addr, uint8(val))
	} else {
		mem.WriteWord(addr, val)
	}
}
