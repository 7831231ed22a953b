package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"mytool/internal/config"
	"mytool/internal/logging"
)

func TestNewFromConfigDefaultsToWarn(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf, false)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hidden at warn level")
	logger.Warn("visible warning")

	out := buf.String()
	if strings.Contains(out, "hidden at warn level") {
		t.Fatalf("expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN – visible warning") {
		t.Fatalf("expected warning line, got %q", out)
	}
}

func TestVerboseForcesDebugWithCaller(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "error", Format: "console", Writer: &buf, Verbose: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("debug detail", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "DEBUG – debug detail") {
		t.Fatalf("expected debug line, got %q", out)
	}
	if !strings.Contains(out, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Fatalf("expected attribute in output, got %q", out)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")
	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerRendersComponentAndCommand(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithCommand(context.Background(), "sum")
	ctx = logging.WithInvocationID(ctx, "abc-123")
	scoped := logging.WithContext(ctx, logging.NewComponentLogger(logger, "dispatcher"))
	scoped.Info("command finished", logging.Args(logging.Int(logging.FieldExitCode, 0))...)

	out := buf.String()
	if !strings.Contains(out, "INFO [dispatcher] sum – command finished") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "invocation_id=abc-123") || !strings.Contains(out, "exit_code=0") {
		t.Fatalf("expected fields in output, got %q", out)
	}
}

func TestJSONLoggerUsesCompactKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello", logging.Args(logging.String(logging.FieldCommand, "hello"))...)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	for _, key := range []string{"ts", "level", "msg", "command"} {
		if _, ok := entry[key]; !ok {
			t.Fatalf("expected key %q in %v", key, entry)
		}
	}
	if entry["level"] != "info" {
		t.Fatalf("expected lower-case level, got %v", entry["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should never be enabled")
	}
	logger.Error("ignored")
}

func TestContextFieldsEmpty(t *testing.T) {
	if fields := logging.ContextFields(context.Background()); len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
	if _, ok := logging.CommandFromContext(logging.WithCommand(context.Background(), "")); ok {
		t.Fatal("empty command should not be stored")
	}
}
