package middleware

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ==================== Request ID Tests ====================

func TestRequestIDGenerated(t *testing.T) {
	interceptor := RequestIDUnaryInterceptor()

	var captured string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		captured = RequestIDFromContext(ctx)
		return nil, nil
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, handler)
	if err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	if captured == "" {
		t.Error("expected a generated request id")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	interceptor := RequestIDUnaryInterceptor()

	md := metadata.Pairs(RequestIDHeader, "client-supplied-id")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var captured string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		captured = RequestIDFromContext(ctx)
		return nil, nil
	}

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, handler)
	if err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	if captured != "client-supplied-id" {
		t.Errorf("expected client-supplied-id, got %q", captured)
	}
}

// ==================== Recovery Tests ====================

func TestRecoveryConvertsPanic(t *testing.T) {
	interceptor := RecoveryUnaryInterceptor()

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, handler)
	if err == nil {
		t.Fatal("expected an error from the recovered panic")
	}
	if got := status.Code(err); got != codes.Internal {
		t.Errorf("expected Internal, got %v", got)
	}
}

func TestRecoveryPassesThroughSuccess(t *testing.T) {
	interceptor := RecoveryUnaryInterceptor()

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, handler)
	if err != nil {
		t.Fatalf("interceptor failed: %v", err)
	}
	if resp != "ok" {
		t.Errorf("expected response to pass through, got %v", resp)
	}
}

// ==================== Rate Limiting Tests ====================

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	limiter := NewRateLimiter(10, 5)

	for i := 0; i < 5; i++ {
		if !limiter.Allow("key") {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
}

func TestRateLimiterBlocksBeyondBurst(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)

	if !limiter.Allow("key") {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("key") {
		t.Error("second request should be rate limited")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)

	if !limiter.Allow("a") {
		t.Fatal("first request for a should be allowed")
	}
	if !limiter.Allow("b") {
		t.Error("first request for b should be allowed")
	}
}

func TestRateLimitInterceptorRejects(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	interceptor := RateLimitUnaryInterceptor(limiter)

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/test"}

	if _, err := interceptor(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	_, err := interceptor(context.Background(), nil, info, handler)
	if got := status.Code(err); got != codes.ResourceExhausted {
		t.Errorf("expected ResourceExhausted, got %v", got)
	}
}
