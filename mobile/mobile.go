// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to keycalc,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// A button-based UI calls Press with the button's label and shows the
// returned string; everything about drawing the buttons is its own affair.
package mobile // import "keycalc.dev/keycalc/mobile"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"keycalc.dev/keycalc/config"
	"keycalc.dev/keycalc/engine"
	"keycalc.dev/keycalc/run"
	"keycalc.dev/keycalc/scan"
)

// Calculator is one calculator session.
type Calculator struct {
	conf   config.Config
	engine *engine.Engine
}

// New returns a cleared Calculator.
func New() *Calculator {
	c := new(Calculator)
	c.Reset()
	return c
}

// Press presses the key labeled token and returns the new display.
func (c *Calculator) Press(token string) (string, error) {
	return c.engine.HandleEvent(token)
}

// Display returns the string currently shown.
func (c *Calculator) Display() string {
	return c.engine.Display()
}

// Eval presses the keys in the input string and returns its output,
// the display after each line.
// If execution caused errors, they will be returned concatenated
// together in the error value returned.
func (c *Calculator) Eval(keys string) (result string, errors error) {
	if !strings.HasSuffix(keys, "\n") {
		keys += "\n"
	}
	reader := strings.NewReader(keys)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	c.conf.SetOutput(stdout)
	c.conf.SetErrOutput(stderr)

	scanner := scan.New(&c.conf, " ", reader)
	for !run.Run(scanner, c.engine, &c.conf, false) {
	}
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Reset clears all state to the initial value.
func (c *Calculator) Reset() {
	c.conf = config.Config{}
	c.engine = engine.New()
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	calc    *Calculator
	scanner *bufio.Scanner
}

// NewDemo resets the calculator and returns a new Demo that will
// scan the input text line by line.
func NewDemo(c *Calculator, input string) *Demo {
	c.Reset()
	return &Demo{
		calc:    c,
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.calc.Eval(d.scanner.Text())
}

// Help returns a summary of the keys.
func Help() string {
	return help
}

const help = `Digits and . enter a number. AC clears.
+ - * / apply the pending operation, left to right, then stage a new one.
^ stages a power; = evaluates it.
sin cos tan (degrees), √ log ln, π, % (divide by 100 and clear), +/- (negate).
Error is shown after a failed computation; press a digit or AC to continue.
`
