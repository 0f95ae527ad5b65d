// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for keycalc.
// It is factored out of main so it can be used for tests.
// This layout also helps out keycalc/mobile.
package run // import "keycalc.dev/keycalc/run"

import (
	"fmt"
	"io"
	"strings"

	"keycalc.dev/keycalc/config"
	"keycalc.dev/keycalc/engine"
	"keycalc.dev/keycalc/scan"
)

// Run presses keys read from the scanner until EOF or error. After each
// line containing keys, it prints the display.
// The return value says whether we completed without error. If the return
// value is true, it means we ran out of data (EOF) and the run was successful.
// Typical execution is therefore to loop calling Run until it succeeds.
// Error details are reported to the configured error output stream,
// and the line holding the error is discarded.
func Run(s *scan.Scanner, e *engine.Engine, conf *config.Config, interactive bool) (success bool) {
	writer := conf.Output()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		keys, ok, err := line(s)
		if err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			return false
		}
		if len(keys) > 0 {
			for _, k := range keys {
				e.Press(k)
				trace(conf, writer, e, k)
			}
			fmt.Fprintln(writer, e.Display())
		}
		if !ok {
			return true
		}
	}
}

// line returns the keys on the next line of input.
// The boolean is false at EOF.
func line(s *scan.Scanner) (keys []engine.Key, ok bool, err error) {
	for {
		tok := s.Next()
		switch tok.Type {
		case scan.EOF:
			return keys, false, nil
		case scan.Newline:
			return keys, true, nil
		case scan.Error:
			return nil, true, fmt.Errorf("%s:%d: %s", s.Name(), tok.Line, tok.Text)
		case scan.Number:
			for _, r := range tok.Text {
				if r == '.' {
					keys = append(keys, engine.Key{Kind: engine.Point})
				} else {
					keys = append(keys, engine.DigitKey(r))
				}
			}
		case scan.Key:
			k, err := engine.ParseKey(tok.Text)
			if err != nil {
				return nil, true, fmt.Errorf("%s:%d: %w", s.Name(), tok.Line, err)
			}
			keys = append(keys, k)
		}
	}
}

// trace prints the effect of a single key, as requested by the debug flags.
func trace(conf *config.Config, w io.Writer, e *engine.Engine, k engine.Key) {
	if conf.Debug("keys") > 0 {
		fmt.Fprintf(w, "\t%s: %s\n", k, e.Display())
	}
	if conf.Debug("state") > 0 {
		fmt.Fprintf(w, "\t%s\n", e.State())
	}
}

// Keys runs the input through the engine to EOF, sending the displays to
// stdout and any errors to stderr. An erroneous line is skipped and
// execution continues.
func Keys(e *engine.Engine, input string, stdout, stderr io.Writer) {
	conf := new(config.Config)
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	scanner := scan.New(conf, "<input>", strings.NewReader(input))
	for !Run(scanner, e, conf, false) {
	}
}
