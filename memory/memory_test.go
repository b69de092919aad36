/*
 * MSP430 - Memory view test cases.
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

package memory

import "testing"

func TestReadWriteByte(t *testing.T) {
	m := New()
	m.WriteByte(0x0200, 0xAB)
	if got := m.ReadByte(0x0200); got != 0xAB {
		t.Errorf("ReadByte(0x200) got 0x%02X, expected 0xAB", got)
	}
}

func TestReadWriteWordLittleEndian(t *testing.T) {
	m := New()
	m.WriteWord(0x0200, 0x1234)
	if got := m.ReadByte(0x0200); got != 0x34 {
		t.Errorf("low byte at 0x200 got 0x%02X, expected 0x34", got)
	}
	if got := m.ReadByte(0x0201); got != 0x12 {
		t.Errorf("high byte at 0x201 got 0x%02X, expected 0x12", got)
	}
	if got := m.ReadWord(0x0200); got != 0x1234 {
		t.Errorf("ReadWord(0x200) got 0x%04X, expected 0x1234", got)
	}
}

func TestReadWriteWordWrapsAtTop(t *testing.T) {
	m := New()
	m.WriteByte(0xFFFF, 0x34)
	m.WriteByte(0x0000, 0x12)
	if got := m.ReadWord(0xFFFF); got != 0x1234 {
		t.Errorf("ReadWord(0xFFFF) got 0x%04X, expected 0x1234 (high byte wraps to 0x0000)", got)
	}
}

func TestLoadImage(t *testing.T) {
	m := New()
	data := []byte{0x01, 0x02, 0x03, 0x04}
	if err := m.LoadImage(0x4400, data); err != nil {
		t.Fatalf("LoadImage: unexpected error %v", err)
	}
	if got := m.Dump(0x4400, 4); string(got) != string(data) {
		t.Errorf("Dump after LoadImage got %v, expected %v", got, data)
	}
}

func TestLoadImageOutOfRange(t *testing.T) {
	m := New()
	data := make([]byte, 16)
	err := m.LoadImage(0xFFF8, data)
	if err == nil {
		t.Fatal("LoadImage past the top of the address space: expected an error, got nil")
	}
	var accessErr *AccessError
	if !asAccessError(err, &accessErr) {
		t.Fatalf("LoadImage error is %T, expected *AccessError", err)
	}
	if !accessErr.Write {
		t.Errorf("AccessError.Write = false, expected true")
	}
}

func asAccessError(err error, target **AccessError) bool {
	ae, ok := err.(*AccessError)
	if ok {
		*target = ae
	}
	return ok
}

func TestDump(t *testing.T) {
	m := New()
	for i := uint16(0); i < 8; i++ {
		m.WriteByte(0x1000+i, uint8(i))
	}
	got := m.Dump(0x1000, 8)
	for i, v := range got {
		if v != uint8(i) {
			t.Errorf("Dump byte %d got 0x%02X, expected 0x%02X", i, v, i)
		}
	}
}
