// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/vdfs

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color escapes for status output.
var colorCodes = map[string]string{
	"red":    "\x1b[31m",
	"green":  "\x1b[32m",
	"yellow": "\x1b[33m",
	"blue":   "\x1b[34m",
}

const colorReset = "\x1b[0m"

// stdoutIsTerminal caches the terminal check for color suppression.
var stdoutIsTerminal = term.IsTerminal(int(os.Stdout.Fd()))

// colorize wraps text in the named ANSI color when stdout is a terminal.
func colorize(color string, text string) string {
	code, ok := colorCodes[color]
	if !ok || !stdoutIsTerminal {
		return text
	}

	return code + text + colorReset
}

// printColored prints one colored status line to stdout.
func printColored(color string, text string) {
	fmt.Println(colorize(color, text))
}
