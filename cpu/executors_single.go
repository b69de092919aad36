/*
 * MSP430 - Single-operand instruction executors.
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

func opRrc(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	opExt := singleOperandExt(ins, ext, false)
	val, write, err := evalOperand(e.Regs, e.Mem, ins.DstReg, ins.DstMode, ins.ByteOp, opExt, e.strictStack)
	if err != nil {
		return 0, err
	}
	sign := uint16(signBit(ins.ByteOp))
	carryIn := uint16(0)
	if e.Regs.Carry() {
		carryIn = sign
	}
	carryOut := val&1 != 0
	result := (val >> 1) | carryIn
	write(result)
	e.Regs.SetCarry(carryOut)
	e.Regs.SetArith(result, ins.ByteOp)
	e.Regs.SetOverflow(false)
	return singleOperandCycles(classifyMode(ins.DstMode)), nil
}

// opRra is an arithmetic right shift: the sign bit is replicated
// rather than replaced by the carry flag.
func opRra(e *Engine, ins isa.Instruction, ext []uint16) (int, error) {
	opExt := singleOperandExt(ins, ext, false)
	val, write, err := evalOperand(e.Regs, e.Mem, ins.DstReg, ins.DstMode, ins.ByteOp, opExt, e.strictStack)
	if err != nil {
		return 0, err
	}
	sign := uint16(signBit(ins.ByteOp))
	carryOut := val&1 != 0
	result := (val >> 1) | (val & sign)
	write(result)
	e.Regs.SetCarry(carryOut)
	e.Regs.SetArith(result, ins.ByteOp)
	e.Regs.SetOverflow(false)
	return singleOperandCycles(classifyMode(ins.DstMode)), nil
}
