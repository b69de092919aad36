/*
 * MSP430 - Instruction cycle accounting.
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

// cycleClass classifies an addressing mode into the broad group the
// published cycle tables key on: a register access (constant-generator
// sources collapse into this group too, since they cost exactly what a
// register read costs), an immediate fetch, an indirect fetch, or an
// indexed/absolute/symbolic fetch that needs an extension word and a
// memory access to resolve.
type cycleClass int

const (
	classRegister cycleClass = iota
	classImmediate
	classIndirect
	classIndexed
)

func classifySource(reg uint8, mode isa.AddrMode) cycleClass {
	if _, ok := isa.ConstantGeneratorValue(reg, mode); ok {
		return classRegister
	}
	return classifyMode(mode)
}

func classifyMode(mode isa.AddrMode) cycleClass {
	switch mode {
	case isa.ModeRegister:
		return classRegister
	case isa.ModeImmediate:
		return classImmediate
	case isa.ModeIndirect, isa.ModeIndirectInc:
		return classIndirect
	default: // Indexed, Absolute, Symbolic.
		return classIndexed
	}
}

// doubleOperandCycles implements the dominant Src->Dst combinations
// from the published cycle table (SLAU445 Table 4-10). MOV, BIT and
// CMP differ from the other Format I mnemonics (ADD/SUB/AND/XOR-style)
// only for an immediate source into a register destination, which
// costs them 1 cycle instead of 2.
func doubleOperandCycles(mnem isa.Mnemonic, srcClass, dstClass cycleClass) int {
	cheapImmediate := mnem == isa.MOV || mnem == isa.BIT || mnem == isa.CMP
	if dstClass == classRegister {
		switch srcClass {
		case classRegister:
			return 1
		case classImmediate:
			if cheapImmediate {
				return 1
			}
			return 2
		default: // Indirect, Indexed.
			if srcClass == classIndirect {
				return 2
			}
			return 3
		}
	}

	// Memory destination: dest is Indexed/Absolute/Symbolic (the only
	// modes a Format I destination field can name).
	switch srcClass {
	case classRegister:
		return 4
	case classIndexed:
		return 6
	default:
		return 5
	}
}

// singleOperandCycles covers RRC, RRA, SWPB, SXT.
func singleOperandCycles(class cycleClass) int {
	switch class {
	case classRegister:
		return 1
	case classIndirect:
		return 3
	default:
		return 4
	}
}
