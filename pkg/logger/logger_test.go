package logger

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger initialized")
	}

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	if WithContext(ctx) == nil {
		t.Fatal("expected contextual logger")
	}

	Info(ctx, "info", zap.String("k", "v"))
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/health", 200, 10*time.Millisecond, "127.0.0.1")
}

func TestWithContextNil(t *testing.T) {
	Init("development")
	if WithContext(nil) == nil {
		t.Fatal("expected base logger for nil context")
	}
}

func TestWithContextTypedRequestID(t *testing.T) {
	Init("development")
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-typed")
	if WithContext(ctx) == nil {
		t.Fatal("expected contextual logger for typed key")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Init("development")
	first := GetLogger()
	Init("production")
	if GetLogger() != first {
		t.Fatal("expected Init to be a no-op after first call")
	}
}
