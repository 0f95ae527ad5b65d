// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the keycalc -demo
// flag. The script for the demo is in demo.keys in this directory.
// Its content is embedded in this source file.
package demo // import "keycalc.dev/keycalc/demo"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	_ "embed"
)

//go:embed demo.keys
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Script hands out the lines of a demo one at a time.
type Script struct {
	text []byte
}

// NewScript returns a Script positioned at the start of the standard demo.
func NewScript() *Script {
	return &Script{text: demoText}
}

// Next returns the next line, including its newline, or nil at the end.
// A final line with no newline is dropped.
func (s *Script) Next() []byte {
	nl := bytes.IndexByte(s.text, '\n')
	if nl < 0 {
		return nil
	}
	line := s.text[:nl+1]
	s.text = s.text[nl+1:]
	return line
}

// Run runs the demo. The arguments are the user's input, a Writer used to deliver
// keys to a calculator, and a Writer for the output. It assumes that the calculator
// is writing to the same output. The first line of the script, holding the
// instructions, is shown immediately. After that, each empty line the user types
// delivers the next script line to the calculator, echoing it to the output.
// A non-empty line is delivered instead and the script does not advance;
// "quit" ends the demo.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, toCalc io.Writer, output io.Writer) error {
	script := NewScript()
	var user *bufio.Scanner
	if userInput != nil {
		user = bufio.NewScanner(userInput)
	}
	output.Write(script.Next())
	for {
		if user != nil {
			if !user.Scan() {
				return user.Err()
			}
			typed := bytes.TrimSpace(user.Bytes())
			if string(typed) == "quit" {
				return nil
			}
			if len(typed) > 0 {
				if _, err := fmt.Fprintf(toCalc, "%s\n", typed); err != nil {
					return err
				}
				continue
			}
		}
		line := script.Next()
		if line == nil {
			return nil
		}
		output.Write(line)
		if _, err := toCalc.Write(line); err != nil {
			return err
		}
	}
}
