package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"strings"
	"testing"
	"time"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestZerologAdapterInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "engine")
	logger.Info("calculation complete",
		String("op", "mul"),
		Int("digits", 42),
		Uint64("iterations", 7),
		Dur("elapsed", 150*time.Millisecond),
	)

	entry := decodeLine(t, &buf)
	if entry["message"] != "calculation complete" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["component"] != "engine" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["op"] != "mul" {
		t.Errorf("op = %v", entry["op"])
	}
	if entry["digits"] != float64(42) {
		t.Errorf("digits = %v", entry["digits"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("timestamp missing from log entry")
	}
}

func TestZerologAdapterError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "server")
	logger.Error("request failed", errors.New("division by zero"))

	entry := decodeLine(t, &buf)
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["error"] != "division by zero" {
		t.Errorf("error = %v", entry["error"])
	}
}

func TestStdLoggerAdapterFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(stdlog.New(&buf, "", 0))
	logger.Info("request handled", String("path", "/calculate"), Int("status", 200))

	out := buf.String()
	for _, want := range []string{"[INFO]", "request handled", "path=/calculate", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
