/*
 * MSP430 - Interactive console reader.
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

package monitor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/peterh/liner"
)

// ConsoleReader drives an interactive liner-backed prompt against
// session until the user quits or aborts with Ctrl-C.
func ConsoleReader(session *Session) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(l string) []string {
		return CompleteCmd(l)
	})

	for {
		input, err := line.Prompt("msp430> ")
		if err == nil {
			line.AppendHistory(input)
			quit, err := ProcessCommand(input, session)
			if err != nil {
				fmt.Println("error: " + err.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}
