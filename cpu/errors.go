/*
 * MSP430 - Execution error types.
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

import "fmt"

// StackOverflowError reports that PUSH or CALL would decrement SP past
// the bottom of the address space.
type StackOverflowError struct {
	SP uint16
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("cpu: stack overflow, SP=0x%04X", e.SP)
}

// StackUnderflowError reports that POP or RETI would increment SP past
// the top of the address space.
type StackUnderflowError struct {
	SP uint16
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("cpu: stack underflow, SP=0x%04X", e.SP)
}

// UnimplementedError reports a decoded mnemonic with no executor in
// the dispatch table. It should never occur for an instruction that
// decoded successfully; it exists as a guard against a gap in the
// table rather than a condition callers are expected to handle.
type UnimplementedError struct {
	Mnemonic fmt.Stringer
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("cpu: no executor registered for %s", e.Mnemonic)
}
