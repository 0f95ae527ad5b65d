// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"keycalc.dev/keycalc/config"
	"keycalc.dev/keycalc/demo"
	"keycalc.dev/keycalc/engine"
	"keycalc.dev/keycalc/run"
	"keycalc.dev/keycalc/scan"
)

/*
To update demo/demo.out:
	keycalc demo/demo.keys > demo/demo.out
*/
func TestDemo(t *testing.T) {
	var testConf config.Config
	var stdout, stderr bytes.Buffer
	testConf.SetOutput(&stdout)
	testConf.SetErrOutput(&stderr)

	scanner := scan.New(&testConf, "demo.keys", strings.NewReader(demo.Text()))
	if !run.Run(scanner, engine.New(), &testConf, false) {
		t.Fatalf("demo execution error: %s", stderr.String())
	}
	data, err := os.ReadFile("demo/demo.out")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != stdout.String() {
		err = os.WriteFile("demo.bad", stdout.Bytes(), 0666)
		t.Fatal("test output differs; run\n\tdiff demo/demo.out demo.bad\nfor details")
	}
}
