// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "keycalc.dev/keycalc"

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"keycalc.dev/keycalc/config"
	"keycalc.dev/keycalc/demo"
	"keycalc.dev/keycalc/engine"
	"keycalc.dev/keycalc/run"
	"keycalc.dev/keycalc/scan"
)

var (
	execute    = flag.Bool("e", false, "execute arguments as keys")
	configFile = flag.String("config", "", "read settings from YAML `file`")
	debugFlag  = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	demoFlag   = flag.Bool("demo", false, "run the demo")
	prompt     = flag.String("prompt", "", "command `prompt`")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("keycalc: ")

	flag.Usage = usage
	flag.Parse()

	if *configFile != "" {
		if err := loadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *prompt != "" {
		conf.SetPrompt(*prompt)
	}
	if *debugFlag != "" {
		for _, name := range strings.Split(*debugFlag, ",") {
			if !conf.SetDebug(name, 1) {
				log.Fatalf("unknown debug flag %q; known flags are %s", name, strings.Join(config.DebugFlags, ", "))
			}
		}
	}

	e := engine.New()

	if *execute {
		run.Keys(e, strings.Join(flag.Args(), " "), conf.Output(), conf.ErrOutput())
		return
	}

	if *demoFlag {
		runDemo(e)
		return
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			if !runFile(e, name) {
				os.Exit(1)
			}
		}
		return
	}

	scanner := scan.New(&conf, "<stdin>", bufio.NewReader(os.Stdin))
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	for !run.Run(scanner, e, &conf, interactive) {
	}
}

func loadConfig(name string) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()
	if err := conf.Load(fd); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// runFile presses the keys in the named file, stopping at the first error.
func runFile(e *engine.Engine, name string) bool {
	fd, err := os.Open(name)
	if err != nil {
		log.Print(err)
		return false
	}
	defer fd.Close()
	scanner := scan.New(&conf, name, bufio.NewReader(fd))
	return run.Run(scanner, e, &conf, false)
}

// runDemo feeds the demo script, paced by the user, through a pipe to the engine.
func runDemo(e *engine.Engine) {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(demo.Run(os.Stdin, pw, conf.Output()))
	}()
	scanner := scan.New(&conf, "demo", bufio.NewReader(pr))
	for !run.Run(scanner, e, &conf, false) {
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: keycalc [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
