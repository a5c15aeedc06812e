package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(ConsoleLoggerParams{Debug: true, Format: "json", Output: &buf})

	l.Debug("[Graph] Built graph", "nodes", 5, "edges", 1)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "[Graph] Built graph" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["nodes"] != float64(5) {
		t.Fatalf("nodes = %v", entry["nodes"])
	}
}

func TestConsoleLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(ConsoleLoggerParams{Format: "logfmt", Output: &buf})

	l.Debug("hidden")
	l.Info("shown", "count", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "count=2") {
		t.Fatalf("unexpected logfmt output: %q", out)
	}
}
