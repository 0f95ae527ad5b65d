// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Keycalc-mcp serves one calculator session over the Model Context Protocol,
// on standard input and output or, with -port, over streamable HTTP.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"keycalc.dev/keycalc/internal/mcpserver"
)

const version = "0.1.0"

func main() {
	var (
		portFlag    = flag.Int("port", 0, "TCP port to listen on (0 for stdio)")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println("keycalc-mcp v" + version)
		os.Exit(0)
	}

	// Standard output carries the protocol; log to standard error.
	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	mcpServer := server.NewMCPServer(
		"keycalc-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
	)
	mcpserver.New(logger).Register(mcpServer)

	if *portFlag == 0 {
		logger.Info("serving on stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
		return
	}
	httpServer := server.NewStreamableHTTPServer(mcpServer)
	addr := fmt.Sprintf(":%d", *portFlag)
	logger.Info("serving HTTP", "addr", addr)
	if err := httpServer.Start(addr); err != nil {
		logger.Error("HTTP server failed", "err", err)
		os.Exit(1)
	}
}
