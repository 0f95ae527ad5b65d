// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the type of a key.
type Kind int

const (
	Digit   Kind = iota // '0' through '9'; the digit is in Key.Rune
	Point               // '.'
	Add                 // '+'
	Sub                 // '-'
	Mul                 // '*'
	Div                 // '/'
	Pow                 // '^'
	Sin                 // sine of degrees
	Cos                 // cosine of degrees
	Tan                 // tangent of degrees
	Sqrt                // '√'
	Log                 // base 10 logarithm
	Ln                  // natural logarithm
	Pi                  // 'π'
	Percent             // '%'
	Sign                // "+/-"
	Equals              // '='
	Clear               // "AC"
)

var kindText = [...]string{
	Digit:   "digit",
	Point:   ".",
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	Pow:     "^",
	Sin:     "sin",
	Cos:     "cos",
	Tan:     "tan",
	Sqrt:    "√",
	Log:     "log",
	Ln:      "ln",
	Pi:      "π",
	Percent: "%",
	Sign:    "+/-",
	Equals:  "=",
	Clear:   "AC",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindText) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindText[k]
}

// Key is a single button press.
type Key struct {
	Kind Kind
	Rune rune // The digit, for Kind Digit.
}

// DigitKey returns the key for the digit r, which must be in '0' through '9'.
func DigitKey(r rune) Key {
	return Key{Kind: Digit, Rune: r}
}

func (k Key) String() string {
	if k.Kind == Digit {
		return string(k.Rune)
	}
	return k.Kind.String()
}

// ErrUnknownKey is returned, wrapped, for a token that names no key.
var ErrUnknownKey = errors.New("unrecognized key")

// keyWords maps spellings to keys. The canonical spellings come first;
// the rest are ASCII or typographic aliases.
var keyWords = map[string]Kind{
	".":   Point,
	"+":   Add,
	"-":   Sub,
	"*":   Mul,
	"/":   Div,
	"^":   Pow,
	"sin": Sin,
	"cos": Cos,
	"tan": Tan,
	"√":   Sqrt,
	"log": Log,
	"ln":  Ln,
	"π":   Pi,
	"%":   Percent,
	"+/-": Sign,
	"=":   Equals,
	"AC":  Clear,

	"**":   Pow,
	"×":    Mul,
	"÷":    Div,
	"±":    Sign,
	"sqrt": Sqrt,
	"pi":   Pi,
	"ac":   Clear,
}

// ParseKey returns the key spelled by s.
func ParseKey(s string) (Key, error) {
	if len(s) == 1 && '0' <= s[0] && s[0] <= '9' {
		return DigitKey(rune(s[0])), nil
	}
	if k, ok := keyWords[s]; ok {
		return Key{Kind: k}, nil
	}
	if k, ok := keyWords[strings.ToLower(s)]; ok {
		return Key{Kind: k}, nil
	}
	return Key{}, fmt.Errorf("%w %q", ErrUnknownKey, s)
}
