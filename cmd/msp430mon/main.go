/*
 * MSP430 - Interactive monitor main process.
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

package main

import (
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/mcu430/msp430/config"
	"github.com/mcu430/msp430/cpu"
	"github.com/mcu430/msp430/logger"
	"github.com/mcu430/msp430/memory"
	"github.com/mcu430/msp430/monitor"
	"github.com/mcu430/msp430/register"
)

var log *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Startup script (LOAD/BREAK/WATCH/RESET/LOG directives)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror log output to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile *os.File
	if *optLogFile != "" {
		var err error
		logFile, err = os.Create(*optLogFile)
		if err != nil {
			println("msp430mon: " + err.Error())
			os.Exit(1)
		}
	}

	var directives []config.Directive
	if *optConfig != "" {
		var err error
		directives, err = config.ParseFile(*optConfig)
		if err != nil {
			println("msp430mon: " + err.Error())
			os.Exit(1)
		}
	}

	var logOut io.Writer
	if logFile != nil {
		logOut = logFile
	}

	level := config.LevelOf(directives, slog.LevelInfo)
	log = logger.New(logOut, level, *optDebug)
	slog.SetDefault(log)
	log.Info("msp430 monitor started")

	regs := register.New()
	mem := memory.New()
	engine := cpu.NewEngine(regs, mem, cpu.WithLogger(log))

	if err := config.Apply(directives, engine); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	session := monitor.New(engine)
	monitor.ConsoleReader(session)

	log.Info("msp430 monitor exiting")
}
