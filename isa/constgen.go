/*
 * MSP430 - Constant generator table.
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

// ConstantGeneratorValue reports whether (reg, mode) is one of the six
// constant-generator source entries, and if so, the constant it
// produces. R2/Register (the SR value itself) and R2/Indexed
// (absolute addressing) are deliberately absent: those two R2 combos
// are ordinary addressing, not constants.
func ConstantGeneratorValue(reg uint8, mode AddrMode) (value uint16, ok bool) {
	switch {
	case reg == 3 && mode == ModeRegister:
		return 0, true
	case reg == 3 && mode == ModeIndexed:
		return 1, true
	case reg == 3 && mode == ModeIndirect:
		return 2, true
	case reg == 3 && mode == ModeIndirectInc:
		return 0xFFFF, true
	case reg == 2 && mode == ModeIndirect:
		return 4, true
	case reg == 2 && mode == ModeIndirectInc:
		return 8, true
	default:
		return 0, false
	}
}
