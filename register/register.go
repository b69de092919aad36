/*
 * MSP430 - Register file and status register.
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

// Package register implements the MSP430 16-register file, R0-R15, and
// the four architecturally meaningful status bits held in R2 (SR).
package register

import "fmt"

// Architectural register aliases.
const (
	PC = 0 // Program counter.
	SP = 1 // Stack pointer.
	SR = 2 // Status register / constant generator 1.
	CG = 3 // Constant generator 2.
)

// Status register bit positions.
const (
	flagC uint16 = 1 << 0 // Carry.
	flagZ uint16 = 1 << 1 // Zero.
	flagN uint16 = 1 << 2 // Negative.
	flagV uint16 = 1 << 8 // Overflow.
)

// File holds the sixteen 16-bit MSP430 registers.
type File struct {
	r [16]uint16
}

// New returns a register file with all registers cleared.
func New() *File {
	return &File{}
}

// Read returns the current value of register reg.
func (f *File) Read(reg int) uint16 {
	return f.r[reg]
}

// Write stores val into register reg.
func (f *File) Write(reg int, val uint16) {
	f.r[reg] = val
}

// PC returns the program counter.
func (f *File) PC() uint16 {
	return f.r[PC]
}

// SetPC sets the program counter.
func (f *File) SetPC(val uint16) {
	f.r[PC] = val
}

// SP returns the stack pointer.
func (f *File) SP() uint16 {
	return f.r[SP]
}

// SetSP sets the stack pointer.
func (f *File) SetSP(val uint16) {
	f.r[SP] = val
}

// SR returns the raw status register word.
func (f *File) SR() uint16 {
	return f.r[SR]
}

// SetSR sets the raw status register word; all four flags change
// coherently since they are just bits of the same word.
func (f *File) SetSR(val uint16) {
	f.r[SR] = val
}

// Zero reports the Z flag.
func (f *File) Zero() bool { return f.r[SR]&flagZ != 0 }

// Negative reports the N flag.
func (f *File) Negative() bool { return f.r[SR]&flagN != 0 }

// Carry reports the C flag.
func (f *File) Carry() bool { return f.r[SR]&flagC != 0 }

// Overflow reports the V flag.
func (f *File) Overflow() bool { return f.r[SR]&flagV != 0 }

// SetZero sets or clears the Z flag.
func (f *File) SetZero(v bool) { f.setFlag(flagZ, v) }

// SetNegative sets or clears the N flag.
func (f *File) SetNegative(v bool) { f.setFlag(flagN, v) }

// SetCarry sets or clears the C flag.
func (f *File) SetCarry(v bool) { f.setFlag(flagC, v) }

// SetOverflow sets or clears the V flag.
func (f *File) SetOverflow(v bool) { f.setFlag(flagV, v) }

func (f *File) setFlag(mask uint16, v bool) {
	if v {
		f.r[SR] |= mask
	} else {
		f.r[SR] &^= mask
	}
}

// SetArith sets Z and N from result, at the given operand width (8 or
// 16 bits); C and V are left to the caller since their computation is
// instruction specific. result must already be masked to that width
// (as addCore's output always is). SetArith checks bit 7 or bit 15
// for N but tests result against zero as a whole, so an unmasked byte
// result with garbage in the upper byte will not read as zero here.
func (f *File) SetArith(result uint16, byteOp bool) {
	f.SetZero(result == 0)
	if byteOp {
		f.SetNegative(result&0x80 != 0)
	} else {
		f.SetNegative(result&0x8000 != 0)
	}
}

// Snapshot is a copy of the register file usable for transactional
// rollback when an executor fails partway through.
type Snapshot struct {
	r [16]uint16
}

// Snapshot captures the current register state.
func (f *File) Snapshot() Snapshot {
	return Snapshot{r: f.r}
}

// Restore replaces the register file's contents with a prior snapshot.
func (f *File) Restore(s Snapshot) {
	f.r = s.r
}

// String renders all sixteen registers for diagnostics.
func (f *File) String() string {
	s := ""
	for i := 0; i < 16; i++ {
		s += fmt.Sprintf("R%-2d=%04X ", i, f.r[i])
		if i%4 == 3 {
			s += "\n"
		}
	}
	return s
}
