// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the input accumulator of a push-button
// scientific calculator. An Engine holds the displayed string and the
// pending operation, and each key press updates both, evaluating left to
// right with no operator precedence. Every failed computation leaves the
// display showing ErrorDisplay; nothing else is reported to the caller.
//
// An Engine is not safe for concurrent use.
package engine // import "keycalc.dev/keycalc/engine"

import "fmt"

// ErrorDisplay is the display after a failed computation.
// Only a digit, a decimal point or Clear leaves it.
const ErrorDisplay = "Error"

// State is the pending operation: the left operand, the operator, and
// whether the next digit starts a fresh number.
type State struct {
	Operand  float64
	Operator Kind
	Awaiting bool
}

// DefaultState is the state of a new or cleared Engine.
var DefaultState = State{Operand: 0, Operator: Add, Awaiting: true}

func (s State) String() string {
	return fmt.Sprintf("operand %v operator %s awaiting %t", s.Operand, s.Operator, s.Awaiting)
}

// Engine is a calculator's display register and accumulator.
type Engine struct {
	display string
	state   State
}

// New returns a cleared Engine showing "0".
func New() *Engine {
	e := new(Engine)
	e.clear()
	return e
}

// Display returns the string currently shown.
func (e *Engine) Display() string {
	return e.display
}

// State returns the pending operation.
func (e *Engine) State() State {
	return e.state
}

// InError reports whether the display shows ErrorDisplay.
func (e *Engine) InError() bool {
	return e.display == ErrorDisplay
}

// HandleEvent presses the key spelled by token and returns the new display.
// The error is non-nil only if token names no key, in which case
// nothing changes.
func (e *Engine) HandleEvent(token string) (string, error) {
	k, err := ParseKey(token)
	if err != nil {
		return e.display, err
	}
	return e.Press(k), nil
}

// Press applies one key and returns the new display.
func (e *Engine) Press(k Key) string {
	switch k.Kind {
	case Clear:
		e.clear()
	case Digit, Point:
		e.enter(k.String())
	case Add, Sub, Mul, Div:
		e.binary(k.Kind)
	case Pow:
		e.stagePower()
	case Equals:
		e.evaluate()
	case Sin, Cos, Tan, Sqrt, Log, Ln:
		e.unary(k.Kind)
	case Pi:
		e.pi()
	case Percent:
		e.percent()
	case Sign:
		e.toggleSign()
	}
	return e.display
}

func (e *Engine) clear() {
	e.display = "0"
	e.state = DefaultState
}

// enter handles a digit or decimal point. In error mode the key only
// clears. The text is not validated, so "1.2.3" can be entered;
// it fails when something tries to use it.
func (e *Engine) enter(s string) {
	switch {
	case e.InError():
		e.clear()
	case e.display == "0" || e.state.Awaiting:
		e.display = s
		e.state.Awaiting = false
	default:
		e.display += s
	}
}

// show sets the display to the normalized x, or to ErrorDisplay if
// err is set or x cannot be shown.
func (e *Engine) show(x float64, err error) {
	if err == nil {
		var s string
		s, err = Normalize(x)
		if err == nil {
			e.display = s
			return
		}
	}
	e.display = ErrorDisplay
}
