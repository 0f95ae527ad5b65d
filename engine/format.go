// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Error is the cause of a failed computation. It never leaves the
// package through Press; it is returned by Combine and Normalize.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

const (
	errDivideByZero = Error("division by zero")
	errNotFinite    = Error("result out of range")
	errErrorMode    = Error("display shows an error")
)

func finite(x float64) (float64, error) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, errNotFinite
	}
	return x, nil
}

// parse returns the value of the display text.
func parse(s string) (float64, error) {
	if s == ErrorDisplay {
		return 0, errErrorMode
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, Errorf("bad number %q", s)
	}
	return finite(x)
}

// Normalize returns the display text for x. Integral values have no
// fractional part; others use the shortest decimal that reads back as x,
// in exponent form only when the exponent is below -4 or at least 16.
func Normalize(x float64) (string, error) {
	if _, err := finite(x); err != nil {
		return "", err
	}
	if x == math.Trunc(x) {
		if x == 0 {
			return "0", nil // Also for negative zero.
		}
		return strconv.FormatFloat(x, 'f', 0, 64), nil
	}
	if exp := exponent(x); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(x, 'e', -1, 64), nil
	}
	return strconv.FormatFloat(x, 'f', -1, 64), nil
}

// exponent returns the decimal exponent of the shortest form of x.
func exponent(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	return exp
}
