/*
 * MSP430 - Breakpoints and watchpoints.
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

// BreakpointHit is returned by Step/Run instead of an execution error
// when PC reaches an armed breakpoint, before the instruction there
// has run. It signals a planned stop, not a fault.
type BreakpointHit struct {
	PC uint16
}

func (b *BreakpointHit) Error() string {
	return fmt.Sprintf("breakpoint at 0x%04X", b.PC)
}

// WatchpointHit is returned when an armed watchpoint's byte changes
// value during a Step, reported after the instruction that changed it
// has otherwise completed normally.
type WatchpointHit struct {
	Addr     uint16
	Old, New uint8
}

func (w *WatchpointHit) Error() string {
	return fmt.Sprintf("watchpoint at 0x%04X: %02X -> %02X", w.Addr, w.Old, w.New)
}

// AddBreakpoint arms a stop the next time PC reaches addr.
func (e *Engine) AddBreakpoint(addr uint16) {
	if e.breakpoints == nil {
		e.breakpoints = make(map[uint16]struct{})
	}
	e.breakpoints[addr] = struct{}{}
}

// RemoveBreakpoint disarms a previously armed breakpoint. Removing one
// that was never set is a no-op.
func (e *Engine) RemoveBreakpoint(addr uint16) {
	delete(e.breakpoints, addr)
}

func (e *Engine) hasBreakpoint(addr uint16) bool {
	_, ok := e.breakpoints[addr]
	return ok
}

// AddWatchpoint arms a byte-level memory watch at addr.
func (e *Engine) AddWatchpoint(addr uint16) {
	if e.watchpoints == nil {
		e.watchpoints = make(map[uint16]struct{})
	}
	e.watchpoints[addr] = struct{}{}
}

// RemoveWatchpoint disarms a previously armed watchpoint.
func (e *Engine) RemoveWatchpoint(addr uint16) {
	delete(e.watchpoints, addr)
}

// watchSnapshot captures the current byte at every armed watchpoint so
// checkWatchpoints can detect a change after the instruction runs.
func (e *Engine) watchSnapshot() map[uint16]uint8 {
	if len(e.watchpoints) == 0 {
		return nil
	}
	snap := make(map[uint16]uint8, len(e.watchpoints))
	for addr := range e.watchpoints {
		snap[addr] = e.Mem.ReadByte(addr)
	}
	return snap
}

// checkWatchpoints compares snap against current memory, returning the
// first changed watchpoint found. Iteration order over a map is
// unspecified, so which one is reported first when several change in
// the same instruction (e.g. a block move) is likewise unspecified.
func (e *Engine) checkWatchpoints(snap map[uint16]uint8) *WatchpointHit {
	for addr, old := range snap {
		if cur := e.Mem.ReadByte(addr); cur != old {
			return &WatchpointHit{Addr: addr, Old: old, New: cur}
		}
	}
	return nil
}
