package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sciodb/internal/config"
)

// ==================== Logger Tests ====================

func TestNewJSONLogger(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	l, err := New(config.LogConfig{
		Level:  "info",
		Format: "json",
		Output: logPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	l.Info("hello", "key", "value")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("expected msg 'hello', got %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key 'value', got %v", entry["key"])
	}
}

func TestNewTextLogger(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	l, err := New(config.LogConfig{
		Level:  "debug",
		Format: "text",
		Output: logPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	l.Debug("debug message")
	l.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "debug message") {
		t.Error("expected log file to contain debug message")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "bogus", Output: "stderr"})
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	l, err := New(config.LogConfig{
		Level:  "warn",
		Format: "json",
		Output: logPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	l.Info("filtered out")
	l.Warn("kept")
	l.Close()

	data, _ := os.ReadFile(logPath)
	if strings.Contains(string(data), "filtered out") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("warn message should be kept")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"invalid", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWith(t *testing.T) {
	l, err := New(config.LogConfig{Level: "info", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	child := l.With("component", "test")
	if child == nil {
		t.Fatal("With returned nil")
	}
	if child.closer != nil {
		t.Error("child logger should not own the closer")
	}
}

func TestDefault(t *testing.T) {
	l := Default()
	if l == nil || l.Logger == nil {
		t.Fatal("Default returned nil logger")
	}
}

// ==================== Redact Tests ====================

func TestRedactingHandler(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	handler := NewRedactingHandler(base, []string{"password", "token"})
	l := slog.New(handler)

	l.Info("login", "password", "hunter2", "username", "alice")

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Error("password value should be redacted")
	}
	if !strings.Contains(out, RedactedValue) {
		t.Error("expected redaction placeholder in output")
	}
	if !strings.Contains(out, "alice") {
		t.Error("non-sensitive field should not be redacted")
	}
}

func TestRedactingHandlerSubstringMatch(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	handler := NewRedactingHandler(base, []string{"token"})
	l := slog.New(handler)

	l.Info("auth", "access_token", "abc123")

	if strings.Contains(buf.String(), "abc123") {
		t.Error("access_token should match the token redact field")
	}
}

// ==================== Error Helper Tests ====================

func TestWrapError(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := WrapError(cause, "operation failed")

	if wrapped == nil {
		t.Fatal("WrapError returned nil for non-nil error")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to the cause")
	}
	if !strings.Contains(wrapped.Error(), "operation failed") {
		t.Errorf("unexpected message: %v", wrapped)
	}

	var we *WrappedError
	if !errors.As(wrapped, &we) {
		t.Fatal("expected a *WrappedError")
	}
	if we.Caller() == "" || we.Caller() == "unknown" {
		t.Errorf("expected caller information, got %q", we.Caller())
	}
}

func TestWrapErrorNil(t *testing.T) {
	if WrapError(nil, "msg") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestWithError(t *testing.T) {
	attr := WithError(errors.New("boom"))
	if attr.Key != "error" {
		t.Errorf("expected group key 'error', got %q", attr.Key)
	}

	if got := WithError(nil); got.Key != "" {
		t.Error("WithError(nil) should return the zero attr")
	}
}

// ==================== Context Tests ====================

func TestOperationContextRoundTrip(t *testing.T) {
	oc := NewOperationContext("startup")
	if oc.Operation != "startup" {
		t.Errorf("expected operation 'startup', got %q", oc.Operation)
	}
	if oc.RequestID == "" {
		t.Error("expected a generated request id")
	}

	ctx := WithOperationContext(context.Background(), oc)
	got := OperationContextFrom(ctx)
	if got != oc {
		t.Error("expected to retrieve the stored operation context")
	}

	if OperationContextFrom(context.Background()) != nil {
		t.Error("expected nil for context without operation context")
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	l := Default()
	ctx := WithLogger(context.Background(), l)
	if LoggerFrom(ctx) != l {
		t.Error("expected to retrieve the stored logger")
	}
	if LoggerFrom(context.Background()) == nil {
		t.Error("LoggerFrom should fall back to Default")
	}
}
