package logger

import (
	"context"
	"log/slog"
	"os"
	"os/user"
	"time"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	operationContextKey contextKey = "operation_context"
	loggerContextKey    contextKey = "logger"
)

// OperationContext holds metadata about a daemon operation.
type OperationContext struct {
	Operation  string    `json:"operation"`
	User       string    `json:"user"`
	Hostname   string    `json:"hostname"`
	WorkingDir string    `json:"working_dir"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id"`
}

// NewOperationContext creates an OperationContext for daemon operations.
func NewOperationContext(operation string) *OperationContext {
	oc := &OperationContext{
		Operation: operation,
		Timestamp: time.Now(),
		RequestID: generateRequestID(),
	}

	if u, err := user.Current(); err == nil {
		oc.User = u.Username
	}

	if hostname, err := os.Hostname(); err == nil {
		oc.Hostname = hostname
	}

	if cwd, err := os.Getwd(); err == nil {
		oc.WorkingDir = cwd
	}

	return oc
}

// WithOperationContext stores an OperationContext in the context.
func WithOperationContext(ctx context.Context, oc *OperationContext) context.Context {
	return context.WithValue(ctx, operationContextKey, oc)
}

// OperationContextFrom retrieves the OperationContext from the context.
func OperationContextFrom(ctx context.Context) *OperationContext {
	if oc, ok := ctx.Value(operationContextKey).(*OperationContext); ok {
		return oc
	}
	return nil
}

// WithLogger stores a Logger in the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, l)
}

// LoggerFrom retrieves the Logger from the context.
func LoggerFrom(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerContextKey).(*Logger); ok {
		return l
	}
	return Default()
}

// LogAttrs returns the OperationContext as slog attributes.
func (oc *OperationContext) LogAttrs() []slog.Attr {
	if oc == nil {
		return nil
	}

	return []slog.Attr{
		slog.String("request_id", oc.RequestID),
		slog.String("operation", oc.Operation),
		slog.String("user", oc.User),
		slog.String("hostname", oc.Hostname),
		slog.String("working_dir", oc.WorkingDir),
		slog.Time("timestamp", oc.Timestamp),
	}
}

// LogGroup returns the OperationContext as a grouped slog attribute.
func (oc *OperationContext) LogGroup() slog.Attr {
	if oc == nil {
		return slog.Attr{}
	}

	args := make([]any, 0, len(oc.LogAttrs()))
	for _, attr := range oc.LogAttrs() {
		args = append(args, attr)
	}

	return slog.Group("context", args...)
}

// generateRequestID creates a unique request ID.
func generateRequestID() string {
	return uuid.New().String()
}
