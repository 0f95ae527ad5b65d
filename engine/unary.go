// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math"

// unaryFn is a scientific function with its domain check.
type unaryFn func(x float64) (float64, error)

var unaryFns = map[Kind]unaryFn{
	Sin:  degrees(math.Sin),
	Cos:  degrees(math.Cos),
	Tan:  degrees(math.Tan),
	Sqrt: sqrt,
	Log:  positive("log", log10),
	Ln:   positive("ln", math.Log),
}

// Trigonometric keys take degrees.
const radiansPerDegree = math.Pi / 180

func degrees(fn func(float64) float64) unaryFn {
	return func(x float64) (float64, error) {
		return finite(fn(x * radiansPerDegree))
	}
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, Errorf("square root of negative number")
	}
	return math.Sqrt(x), nil
}

func positive(name string, fn func(float64) float64) unaryFn {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, Errorf("%s of non-positive number", name)
		}
		return finite(fn(x))
	}
}

// log10 is math.Log10, made exact for integral powers of ten.
func log10(x float64) float64 {
	r := math.Log10(x)
	if p := math.Round(r); math.Pow(10, p) == x {
		return p
	}
	return r
}

// unary replaces the display with fn applied to it.
// The pending operation is untouched.
func (e *Engine) unary(k Kind) {
	x, err := parse(e.display)
	if err != nil {
		e.show(0, err)
		return
	}
	e.show(unaryFns[k](x))
}

// pi shows π unless the display shows an error.
func (e *Engine) pi() {
	if e.InError() {
		return
	}
	e.show(math.Pi, nil)
}

// percent divides the display by 100 and resets the state.
func (e *Engine) percent() {
	x, err := parse(e.display)
	e.show(x/100, err)
	e.state = DefaultState
}

// toggleSign negates the display. A positive value gets a minus sign
// prefixed to the text as shown; a negative one is replaced by its
// normalized absolute value. Zero is left alone.
func (e *Engine) toggleSign() {
	x, err := parse(e.display)
	switch {
	case err != nil:
		e.show(0, err)
	case x > 0:
		e.display = "-" + e.display
	case x < 0:
		e.show(-x, nil)
	}
}
