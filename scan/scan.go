// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns lines of text into calculator key tokens.
package scan // import "keycalc.dev/keycalc/scan"

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"keycalc.dev/keycalc/config"
	"keycalc.dev/keycalc/engine"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF     Type = iota // zero value so closed channel delivers EOF
	Error               // error occurred; value is text of error
	Newline             // end of line, or ';'
	Number              // run of digits and decimal points, one key per character
	Key                 // operator, function or other named key
)

var typeName = [...]string{
	EOF:     "EOF",
	Error:   "Error",
	Newline: "Newline",
	Number:  "Number",
	Key:     "Key",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeName) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeName[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// symbols are the single-rune keys.
const symbols = "+-*/^%=√π±×÷"

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	config    *config.Config
	r         io.ByteReader
	done      bool
	name      string // the name of the input; used only for error reports
	buf       []byte // I/O buffer, re-used.
	input     string // the line of text being scanned.
	lastRune  rune   // most recent return from next()
	lastWidth int    // size of that rune
	line      int    // line number in input
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// (l.input may have data left over when we are called.)
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' { // There will never be a \r in l.input.
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	// Reset to beginning of input buffer if there is nothing pending.
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start = 0
		l.pos = 0
	} else {
		l.input += string(l.buf)
	}
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r, _ := l.readRune()
	return r
}

// peek2 returns the next two runes ahead, but does not consume anything.
func (l *Scanner) peek2() (rune, rune) {
	pos := l.pos
	r1 := l.next()
	r2 := l.next()
	l.pos = pos
	return r1, r2
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	if l.pos > l.start {
		l.pos -= l.lastWidth
	}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	l.token = Token{t, l.line, text}
	if l.config.Debug("tokens") > 0 {
		fmt.Fprintf(l.config.Output(), "%s:%d: emit %s\n", l.name, l.line, l.token)
	}
	if t == Newline {
		l.line++
	}
	l.start = l.pos
	return nil
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and discards the rest of the line.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, fmt.Sprintf(format, args...)}
	for {
		r := l.next()
		if r == eof {
			break
		}
		if r == '\n' {
			l.line++
			break
		}
	}
	l.start = l.pos
	return nil
}

// New creates and returns a new scanner. The configuration may be nil.
func New(conf *config.Config, name string, r io.ByteReader) *Scanner {
	l := &Scanner{
		config: conf,
		r:      r,
		name:   name,
		line:   1,
	}
	return l
}

// Name returns the name of the input.
func (l *Scanner) Name() string {
	return l.name
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.line, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexComment scans a comment. The comment marker has been consumed.
func lexComment(l *Scanner) stateFn {
	for {
		switch l.next() {
		case eof:
			l.start = l.pos
			return nil
		case '\n':
			return l.emit(Newline)
		}
	}
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n' || r == ';':
		return l.emit(Newline)
	case r == '#':
		return lexComment
	case isSpace(r):
		return lexSpace
	case r == '.' || isDigit(r):
		return lexNumber
	case r == '+':
		// "+/-" is the sign key; "+/" followed by anything else is two keys.
		// Peek no further than the '/' so an interactive line is not held up.
		if l.peek() == '/' {
			if _, r2 := l.peek2(); r2 == '-' {
				l.next()
				l.next()
			}
		}
		return l.emit(Key)
	case r == '*':
		if l.peek() == '*' {
			l.next()
		}
		return l.emit(Key)
	case strings.ContainsRune(symbols, r):
		return l.emit(Key)
	case unicode.IsLetter(r):
		l.backup()
		return lexWord
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexNumber scans digits and decimal points. Their validity as a
// number is the calculator's business, not the scanner's.
func lexNumber(l *Scanner) stateFn {
	l.acceptRun("0123456789.")
	return l.emit(Number)
}

// lexWord scans a named key such as sin or AC.
func lexWord(l *Scanner) stateFn {
	for r := l.peek(); unicode.IsLetter(r) && r != 'π'; r = l.peek() {
		l.next()
	}
	word := l.input[l.start:l.pos]
	if _, err := engine.ParseKey(word); err != nil {
		return l.errorf("%s", err)
	}
	return l.emit(Key)
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
