/*
 * MSP430 - Decode error types.
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

// InvalidInstructionError reports an undefined opcode, a reserved
// encoding, or a jump offset outside -511..+512.
type InvalidInstructionError struct {
	Word   uint16
	Reason string
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("isa: invalid instruction 0x%04X: %s", e.Word, e.Reason)
}
