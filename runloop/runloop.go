/*
 * MSP430 - Goroutine-driven run loop around the instruction engine.
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

// Package runloop lets a host (the demo monitor, a test harness) run
// an engine on its own goroutine and command it with Start/Stop/Pause
// the way the teacher's core package drives its CPU, rather than
// calling Engine.Run synchronously from the caller's own goroutine.
package runloop

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcu430/msp430/cpu"
)

// Event reports a run that stopped on an error: the number of cycles
// that run consumed and the error that stopped it. Runs that end
// cleanly publish no Event.
type Event struct {
	Cycles uint64
	Err    error
}

// Loop owns a background goroutine that repeatedly runs an Engine
// between Start and Stop/Pause commands, publishing an Event on Events
// whenever a run stops with an error. It exists so a monitor's own
// input-handling goroutine
// never blocks on Engine.Run directly.
type Loop struct {
	engine *cpu.Engine
	Events chan Event

	wg      sync.WaitGroup
	cmd     chan command
	done    chan struct{}
	running bool
}

type command struct {
	start bool
	pause bool
}

// New creates a Loop around engine. Call Run to start its background
// goroutine before sending Start/Pause commands.
func New(engine *cpu.Engine) *Loop {
	return &Loop{
		engine: engine,
		Events: make(chan Event, 1),
		cmd:    make(chan command),
		done:   make(chan struct{}),
	}
}

// Run is the background goroutine body: it alternates between idling
// (waiting for a Start command) and running the engine in bounded
// slices so a Pause or Stop is never more than one slice late. Call it
// with `go loop.Run()`.
func (l *Loop) Run() {
	l.wg.Add(1)
	defer l.wg.Done()

	const slice = 4096 // instructions per Engine.Run call while running

	for {
		select {
		case <-l.done:
			return
		case c := <-l.cmd:
			l.running = c.start && !c.pause
		default:
		}

		if !l.running {
			select {
			case <-l.done:
				return
			case c := <-l.cmd:
				l.running = c.start && !c.pause
			}
			continue
		}

		ctx, cancel := context.WithCancel(context.Background())
		cycles, err := l.engine.Run(ctx, slice)
		cancel()
		if err != nil {
			l.running = false
			select {
			case l.Events <- Event{Cycles: cycles, Err: err}:
			default:
				slog.Warn("runloop: dropped event, channel full")
			}
		}
	}
}

// Start resumes execution from the current PC.
func (l *Loop) Start() { l.cmd <- command{start: true} }

// Pause halts execution after the current instruction slice without
// tearing down the goroutine; Start resumes it.
func (l *Loop) Pause() { l.cmd <- command{start: false, pause: true} }

// Stop shuts the background goroutine down, waiting up to one second
// for the in-flight instruction slice to finish.
func (l *Loop) Stop() {
	close(l.done)
	finished := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		slog.Warn("runloop: timed out waiting for engine to stop")
	}
}
