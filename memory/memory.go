/*
 * MSP430 - Byte addressable 64KiB memory view.
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

// Package memory implements the flat, little-endian, 64KiB address
// space shared by the MSP430 core and its host.
package memory

import "fmt"

// Size is the width of the MSP430 (non-CPUX) address space in bytes.
const Size = 1 << 16

// AccessError reports an access outside the 64KiB address space.
type AccessError struct {
	Addr  uint32
	Write bool
}

func (e *AccessError) Error() string {
	dir := "read"
	if e.Write {
		dir = "write"
	}
	return fmt.Sprintf("memory: %s out of range at 0x%05X", dir, e.Addr)
}

// Memory is a flat byte-addressable 64KiB buffer.
type Memory struct {
	b [Size]byte
}

// New returns a zeroed 64KiB memory.
func New() *Memory {
	return &Memory{}
}

// ReadByte returns the byte at addr.
func (m *Memory) ReadByte(addr uint16) uint8 {
	return m.b[addr]
}

// WriteByte stores val at addr.
func (m *Memory) WriteByte(addr uint16, val uint8) {
	m.b[addr] = val
}

// ReadWord returns the little-endian word at addr: the low byte lives
// at addr, the high byte at addr+1 (wrapping at the top of the space).
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.b[addr]
	hi := m.b[addr+1]
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord stores val at addr in little-endian order.
func (m *Memory) WriteWord(addr uint16, val uint16) {
	m.b[addr] = uint8(val)
	m.b[addr+1] = uint8(val >> 8)
}

// LoadImage copies data into memory starting at base. It reports an
// AccessError if data would run past the top of the address space.
func (m *Memory) LoadImage(base uint16, data []byte) error {
	end := uint32(base) + uint32(len(data))
	if end > Size {
		return &AccessError{Addr: end, Write: true}
	}
	copy(m.b[base:], data)
	return nil
}

// Dump returns a copy of length bytes starting at base, for
// diagnostics and tests.
func (m *Memory) Dump(base, length uint16) []byte {
	out := make([]byte, length)
	copy(out, m.b[base:uint32(base)+uint32(length)])
	return out
}
