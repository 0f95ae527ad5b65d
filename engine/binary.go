// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math"

// Combine returns a op b for op one of Add, Sub, Mul or Div.
// Division by zero, a non-finite result, or any other operator is an error.
// In particular Pow is an error: a power is only evaluated by Equals.
func Combine(a, b float64, op Kind) (float64, error) {
	var r float64
	switch op {
	case Add:
		r = a + b
	case Sub:
		r = a - b
	case Mul:
		r = a * b
	case Div:
		if b == 0 {
			return 0, errDivideByZero
		}
		r = a / b
	default:
		return 0, Errorf("unresolved operator %s", op)
	}
	return finite(r)
}

// power returns a**b.
func power(a, b float64) (float64, error) {
	return finite(math.Pow(a, b))
}

// binary evaluates the pending operation against the display and
// stages op with the result as its left operand.
func (e *Engine) binary(op Kind) {
	result, err := e.combineDisplay(Combine)
	if err != nil {
		e.state.Operand = 0
	} else {
		e.state.Operand = result
	}
	e.state.Operator = op
	e.state.Awaiting = true
	e.show(result, err)
}

// stagePower records the display as the base of a power. Nothing is
// evaluated, not even a pending operation, which is therefore lost.
func (e *Engine) stagePower() {
	x, err := parse(e.display)
	e.state.Operand = x
	e.state.Operator = Pow
	e.state.Awaiting = true
	if err != nil {
		e.display = ErrorDisplay
	}
}

// evaluate finishes the pending operation and resets the state,
// whether or not the evaluation succeeds.
func (e *Engine) evaluate() {
	fn := Combine
	if e.state.Operator == Pow {
		fn = func(a, b float64, _ Kind) (float64, error) {
			return power(a, b)
		}
	}
	e.show(e.combineDisplay(fn))
	e.state = DefaultState
}

// combineDisplay applies fn to the pending operand and the display.
func (e *Engine) combineDisplay(fn func(a, b float64, op Kind) (float64, error)) (float64, error) {
	b, err := parse(e.display)
	if err != nil {
		return 0, err
	}
	return fn(e.state.Operand, b, e.state.Operator)
}
