/*
 * MSP430 - Logical instruction executors.
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

func opAnd(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	src, dst, write, cycles, err := formatIOperands(e, ins, ext)
	if err != nil {
		return 0, err
	}
	result := dst & src
	write(result)
	e.Regs.SetCarry(result != 0)
	e.Regs.SetArith(result, ins.ByteOp)
	e.Regs.SetOverflow(false)
	return cycles, nil
}

func opBit(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	src, dst, _, cycles, err := formatIOperands(e, ins, ext)
	if err != nil {
		return 0, err
	}
	result := dst & src
	e.Regs.SetCarry(result != 0)
	e.Regs.SetArith(result, ins.ByteOp)
	e.Regs.SetOverflow(false)
	return cycles, nil
}

// opBic and opBis never touch flags: BIC/BIS are pure bit-manipulation
// forms with no status-register contract.
func opBic(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	src, dst, write, cycles, err := formatIOperands(e, ins, ext)
	if err != nil {
		return 0, err
	}
	write(dst &^ src)
	return cycles, nil
}

func opBis(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	src, dst, write, cycles, err := formatIOperands(e, ins, ext)
	if err != nil {
		return 0, err
	}
	write(dst | src)
	return cycles, nil
}

func opXor(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	src, dst, write, cycles, err := formatIOperands(e, ins, ext)
	if err != nil {
		return 0, err
	}
	result := dst ^ src
	write(result)
	sign := uint16(signBit(ins.ByteOp))
	v := dst&sign != 0 && src&sign != 0
	e.Regs.SetCarry(result != 0)
	e.Regs.SetArith(result, ins.ByteOp)
	e.Regs.SetOverflow(v)
	return cycles, nil
}
