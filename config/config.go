// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config // import "keycalc.dev/keycalc/config"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"keys",   // print the display after every key
	"state",  // print the pending operation after every key
	"tokens", // print every token the scanner emits
}

// ErrUnknownDebug is returned, wrapped, by Load for a debug name not in DebugFlags.
var ErrUnknownDebug = errors.New("unknown debug flag")

// A Config holds information about the configuration of the system.
// The zero value of a Config, or a nil Config pointer, is ready to use.
type Config struct {
	prompt    string
	output    io.Writer
	errOutput io.Writer
	debug     map[string]int
}

func (c *Config) Output() io.Writer {
	if c == nil || c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

func (c *Config) ErrOutput() io.Writer {
	if c == nil || c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

// Debug returns the value of the specified boolean debugging flag.
func (c *Config) Debug(flag string) int {
	if c == nil {
		return 0
	}
	return c.debug[flag]
}

// SetDebug sets the value of the specified boolean debugging flag.
// It returns false if the flag is not known.
func (c *Config) SetDebug(flag string, state int) bool {
	if !isDebugFlag(flag) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]int)
	}
	c.debug[flag] = state
	return true
}

// DebugNames returns the names of the debugging flags that are set, sorted.
func (c *Config) DebugNames() []string {
	var names []string
	for name, v := range c.debug {
		if v != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func isDebugFlag(flag string) bool {
	for _, f := range DebugFlags {
		if f == flag {
			return true
		}
	}
	return false
}

func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// file is the YAML form of a Config.
type file struct {
	Prompt *string        `yaml:"prompt"`
	Debug  map[string]int `yaml:"debug"`
}

// Load applies the settings in the YAML document read from r.
// Settings absent from the document keep their current values.
//
//	prompt: "calc> "
//	debug:
//	  keys: 1
func (c *Config) Load(r io.Reader) error {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	names := make([]string, 0, len(f.Debug))
	for name := range f.Debug {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !isDebugFlag(name) {
			return fmt.Errorf("config: %w %q", ErrUnknownDebug, name)
		}
	}
	for _, name := range names {
		c.SetDebug(name, f.Debug[name])
	}
	if f.Prompt != nil {
		c.prompt = *f.Prompt
	}
	return nil
}
