// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestZeroConfig(t *testing.T) {
	var c *Config
	if c.Output() != os.Stdout || c.ErrOutput() != os.Stderr {
		t.Error("nil Config does not default to standard output streams")
	}
	if c.Prompt() != "" || c.Debug("keys") != 0 {
		t.Error("nil Config has settings")
	}
}

func TestSetDebug(t *testing.T) {
	var c Config
	for _, name := range DebugFlags {
		if !c.SetDebug(name, 1) {
			t.Errorf("SetDebug(%q) rejected", name)
		}
	}
	if c.SetDebug("cpu", 1) {
		t.Error("SetDebug accepted unknown flag")
	}
	c.SetDebug("keys", 0)
	if got, want := c.DebugNames(), []string{"state", "tokens"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DebugNames = %q; want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	var c Config
	c.SetPrompt("old> ")
	c.SetDebug("state", 1)
	const doc = `
prompt: "calc> "
debug:
  keys: 1
  tokens: 2
`
	if err := c.Load(strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}
	if got := c.Prompt(); got != "calc> " {
		t.Errorf("prompt %q; want %q", got, "calc> ")
	}
	if c.Debug("keys") != 1 || c.Debug("tokens") != 2 || c.Debug("state") != 1 {
		t.Errorf("debug flags %v", c.debug)
	}
}

func TestLoadEmpty(t *testing.T) {
	var c Config
	c.SetPrompt("> ")
	if err := c.Load(strings.NewReader("")); err != nil {
		t.Fatal(err)
	}
	if c.Prompt() != "> " {
		t.Errorf("empty document changed prompt to %q", c.Prompt())
	}
}

func TestLoadErrors(t *testing.T) {
	var c Config
	err := c.Load(strings.NewReader("debug:\n  cpu: 1\n"))
	if !errors.Is(err, ErrUnknownDebug) {
		t.Errorf("unknown debug flag: got %v; want %v", err, ErrUnknownDebug)
	}
	if c.Debug("cpu") != 0 {
		t.Error("unknown flag was set")
	}
	if err := c.Load(strings.NewReader("format: '%v'\n")); err == nil {
		t.Error("unknown field: no error")
	}
	if err := c.Load(strings.NewReader("prompt: [\n")); err == nil {
		t.Error("bad YAML: no error")
	}
}
