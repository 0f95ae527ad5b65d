// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func newServer() *Server {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	result, err := handler(context.Background(), request)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("got %d content items", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestPress(t *testing.T) {
	s := newServer()
	var tests = []struct {
		keys    string
		display string
	}{
		{"7 + 3", "3"},
		{"=", "10"},
		{"AC 5+2*3=", "21"},
		{"2^10=", "1024"},
		{"1/0=", "Error"},
		{"4", "0"},
		{"2 sqrt", "1.4142135623730951"},
	}
	for _, test := range tests {
		got, isErr := callTool(t, s.handlePress, map[string]any{"keys": test.keys})
		if isErr {
			t.Errorf("%q: tool error %s", test.keys, got)
			continue
		}
		if got != test.display {
			t.Errorf("%q: got %q; want %q", test.keys, got, test.display)
		}
	}
}

func TestPressErrors(t *testing.T) {
	s := newServer()
	callTool(t, s.handlePress, map[string]any{"keys": "12"})
	msg, isErr := callTool(t, s.handlePress, map[string]any{"keys": "+ foo"})
	if !isErr || !strings.Contains(msg, `unrecognized key "foo"`) {
		t.Errorf("bad key: got %q, error %t", msg, isErr)
	}
	if _, isErr := callTool(t, s.handlePress, nil); !isErr {
		t.Error("missing keys: no error")
	}
	if _, isErr := callTool(t, s.handlePress, map[string]any{"keys": 7}); !isErr {
		t.Error("numeric keys: no error")
	}
	// The bad line was not pressed.
	if got, err := s.Press(""); err != nil || got != "12" {
		t.Errorf("after errors: got %q, %v; want %q", got, err, "12")
	}
	if got, _ := callTool(t, s.handleClear, nil); got != "0" {
		t.Errorf("clear: got %q", got)
	}
}

func TestDisplay(t *testing.T) {
	s := newServer()
	callTool(t, s.handlePress, map[string]any{"keys": "7 *"})
	text, isErr := callTool(t, s.handleDisplay, nil)
	if isErr {
		t.Fatal(text)
	}
	var got State
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatal(err)
	}
	want := State{Display: "7", Operand: 7, Operator: "*", Awaiting: true}
	if got != want {
		t.Errorf("got %+v; want %+v", got, want)
	}
}

func TestConcurrentPress(t *testing.T) {
	s := newServer()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Press("1 +"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if got, err := s.Press(""); err != nil || got != "20" {
		t.Errorf("got %q, %v; want %q", got, err, "20")
	}
}

func TestRegister(t *testing.T) {
	m := server.NewMCPServer("keycalc", "test", server.WithToolCapabilities(true), server.WithResourceCapabilities(true, true))
	newServer().Register(m)
	ctx := context.Background()

	list, err := json.Marshal(m.HandleMessage(ctx, []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"press", "clear", "display"} {
		if !strings.Contains(string(list), `"name":"`+name+`"`) {
			t.Errorf("tools/list lacks %s: %s", name, list)
		}
	}

	call, err := json.Marshal(m.HandleMessage(ctx, []byte(
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"press","arguments":{"keys":"2 ^ 8 ="}}}`)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(call), `"text":"256"`) {
		t.Errorf("tools/call: %s", call)
	}
}
