/*
 * MSP430 - Hex formatting helpers for the monitor's memory dumps.
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

// Package hexfmt writes fixed-width hexadecimal text into a
// strings.Builder, the way the teacher's util/hex package builds
// mainframe register/storage dumps one nibble at a time rather than
// through fmt verbs, so the monitor's examine command can lay out a
// whole line of words before printing it.
package hexfmt

import "strings"

var hexDigits = "0123456789ABCDEF"

// FormatHalf appends each value in half as four hex digits, followed
// by a space after every word (the last included) when space is true,
// or one trailing space for the whole run when it is false.
func FormatHalf(str *strings.Builder, space bool, half []uint16) {
	for _, word := range half {
		shift := 12
		for range 4 {
			str.WriteByte(hexDigits[(word>>shift)&0xf])
			shift -= 4
		}
		if space {
			str.WriteByte(' ')
		}
	}
	if !space {
		str.WriteByte(' ')
	}
}

// FormatByte appends a single byte as two hex digits.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexDigits[(data>>4)&0xf])
	str.WriteByte(hexDigits[data&0xf])
}

// FormatBytes appends each byte in data as two hex digits, with a
// trailing space per byte when space is true.
func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for _, b := range data {
		FormatByte(str, b)
		if space {
			str.WriteByte(' ')
		}
	}
}
