// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mcpserver exposes a calculator session as Model Context Protocol
// tools: press keys, clear, and read the display and pending operation.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"keycalc.dev/keycalc/config"
	"keycalc.dev/keycalc/engine"
	"keycalc.dev/keycalc/run"
	"keycalc.dev/keycalc/scan"
)

const stateURI = "keycalc://state"

// Server holds the one calculator that all tool calls share.
// Calls are handled one at a time.
type Server struct {
	mu     sync.Mutex
	engine *engine.Engine
	logger *slog.Logger
}

// New returns a Server with a cleared calculator.
func New(logger *slog.Logger) *Server {
	return &Server{
		engine: engine.New(),
		logger: logger,
	}
}

// Register adds the calculator's tools and resources to m.
func (s *Server) Register(m *server.MCPServer) {
	m.AddTool(mcp.NewTool("press",
		mcp.WithDescription("Press calculator keys and return the display. "+
			"Keys are digits, '.', + - * / ^ =, sin cos tan sqrt log ln pi, %, +/- and AC, "+
			"separated by spaces or run together, as in '7 + 3 =' or '2^10='. "+
			"Operators apply left to right without precedence."),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("The keys to press, in order"),
		),
	), s.handlePress)

	m.AddTool(mcp.NewTool("clear",
		mcp.WithDescription("Press AC: clear the display and the pending operation"),
	), s.handleClear)

	m.AddTool(mcp.NewTool("display",
		mcp.WithDescription("Return the display and the pending operation as JSON"),
	), s.handleDisplay)

	m.AddResource(mcp.NewResource(stateURI,
		"Calculator state",
		mcp.WithResourceDescription("The display and the pending operation"),
		mcp.WithMIMEType("application/json"),
	), s.handleState)
}

func (s *Server) handlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	keys, ok := args["keys"].(string)
	if !ok {
		return mcp.NewToolResultError("keys is required"), nil
	}
	display, err := s.Press(keys)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(display), nil
}

func (s *Server) handleClear(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Info("clear")
	return mcp.NewToolResultText(s.engine.Press(engine.Key{Kind: engine.Clear})), nil
}

func (s *Server) handleDisplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.stateJSON()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleState(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := s.stateJSON()
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      stateURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// Press runs the keys through the calculator and returns the display.
// A line that does not scan is not pressed at all.
func (s *Server) Press(keys string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var conf config.Config
	var stdout, stderr bytes.Buffer
	conf.SetOutput(&stdout)
	conf.SetErrOutput(&stderr)
	// Newlines would make several lines; only the display at the end matters.
	scanner := scan.New(&conf, "keys", strings.NewReader(keys))
	if !run.Run(scanner, s.engine, &conf, false) {
		msg := strings.TrimSpace(stderr.String())
		s.logger.Warn("press failed", "keys", keys, "err", msg)
		return "", fmt.Errorf("%s", msg)
	}
	display := s.engine.Display()
	s.logger.Info("press", "keys", keys, "display", display)
	return display, nil
}

// State is the JSON form of the calculator.
type State struct {
	Display  string  `json:"display"`
	Operand  float64 `json:"operand"`
	Operator string  `json:"operator"`
	Awaiting bool    `json:"awaiting"`
}

func (s *Server) stateJSON() ([]byte, error) {
	s.mu.Lock()
	st := s.engine.State()
	state := State{
		Display:  s.engine.Display(),
		Operand:  st.Operand,
		Operator: st.Operator.String(),
		Awaiting: st.Awaiting,
	}
	s.mu.Unlock()
	return json.Marshal(state)
}
