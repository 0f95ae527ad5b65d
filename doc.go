// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Keycalc is the engine of a push-button scientific calculator, driven from
text. Each line of input is a sequence of key presses; after each line the
calculator's display is printed.

	% keycalc
	7 + 3 =
	10
	5 + 2 * 3 =
	21

There is no operator precedence. Pressing an operator first applies the
pending one, so 5 + 2 * 3 = is (5+2)*3. The display after each operator
shows the running result.

Keys, with the ASCII spellings accepted for the others:

	0 … 9 .     enter a number; a digit after an operator starts a new one
	+ - * /     apply the pending operation, then stage this one
	^ (**)      stage a power; only = evaluates it
	=           finish the pending operation and start over
	AC (ac)     clear everything
	sin cos tan trigonometric functions of degrees
	√ (sqrt)    square root
	log ln      base 10 and natural logarithms
	π (pi)      show π
	%           divide by 100 and start over
	+/- (±)     flip the sign
	× ÷         the same as * and /

Numbers may be run together with keys: 2^10= and 40% work. A digit after
an operator starts a new number; a digit after a function appends to the
function's result. Entered text is not checked, so 1.2.3 can be typed;
using it is an error.

A computation that fails, such as division by zero, the square root of a
negative number, the logarithm of a non-positive one, a power that
overflows, or an unfinished power followed by another operator, shows

	Error

Operators and functions leave Error in place. A digit or AC clears it;
the digit itself is not entered.

Text after # to the end of the line is a comment; ; separates lines.

Usage:

	keycalc [options] [file ...]

With no files, keys are read from standard input, with a prompt if it is a
terminal. Flags:

	-e
		Execute the arguments as keys, as in keycalc -e 2 ^ 8 =
	-config file
		Read settings from a YAML file:
			prompt: "calc> "
			debug:
			  keys: 1
	-debug names
		Enable the comma-separated debug settings: keys (show the
		display after every key), state (show the pending operation
		after every key), tokens (show the scanner's output).
	-demo
		Step through a demonstration. Press return for each line.
	-prompt string
		Set the interactive prompt.

The command keycalc-mcp serves a calculator session over the Model
Context Protocol.
*/
package main
