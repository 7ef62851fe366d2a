// Package middleware provides gRPC interceptors for the sciodb daemon.
package middleware

import (
	"context"
	"sync"
	"time"

	"sciodb/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// log is the package-level logger used by the interceptors.
var log = logger.Default()

// SetLogger replaces the interceptor logger.
func SetLogger(l *logger.Logger) {
	log = l.With("component", "grpc")
}

// Context keys for request metadata
type requestContextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey requestContextKey = "request_id"

	// RequestIDHeader is the metadata key for request IDs.
	RequestIDHeader = "x-request-id"

	// StartTimeKey is the context key for request start time.
	StartTimeKey requestContextKey = "start_time"
)

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// ============================================================================
// Request ID Interceptor
// ============================================================================

// RequestIDUnaryInterceptor adds or propagates request IDs for tracing.
func RequestIDUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := extractOrGenerateRequestID(ctx)
		ctx = WithRequestID(ctx, requestID)

		// Add request ID to outgoing headers
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		return handler(ctx, req)
	}
}

// RequestIDStreamInterceptor adds or propagates request IDs for streaming RPCs.
func RequestIDStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		requestID := extractOrGenerateRequestID(ss.Context())
		ctx := WithRequestID(ss.Context(), requestID)

		// Add request ID to outgoing headers
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		wrapped := &wrappedServerStream{ServerStream: ss, ctx: ctx}
		return handler(srv, wrapped)
	}
}

func extractOrGenerateRequestID(ctx context.Context) string {
	// Check if request ID is already in incoming metadata
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	// Generate new UUID
	return uuid.New().String()
}

// ============================================================================
// Logging Interceptor
// ============================================================================

// LoggingUnaryInterceptor logs all RPC calls with timing information.
func LoggingUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		ctx = context.WithValue(ctx, StartTimeKey, start)

		requestID := RequestIDFromContext(ctx)
		peerAddr := getPeerAddress(ctx)

		// Execute handler
		resp, err := handler(ctx, req)

		logRPCCall(requestID, info.FullMethod, peerAddr, time.Since(start), err)

		return resp, err
	}
}

// LoggingStreamInterceptor logs streaming RPC calls.
func LoggingStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		ctx := context.WithValue(ss.Context(), StartTimeKey, start)

		requestID := RequestIDFromContext(ctx)
		peerAddr := getPeerAddress(ctx)

		wrapped := &wrappedServerStream{ServerStream: ss, ctx: ctx}

		err := handler(srv, wrapped)

		logRPCCall(requestID, info.FullMethod, peerAddr, time.Since(start), err)

		return err
	}
}

func getPeerAddress(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown"
}

func logRPCCall(requestID, method, peer string, duration time.Duration, err error) {
	code := status.Code(err)
	attrs := []any{
		"request_id", requestID,
		"method", method,
		"peer", peer,
		"code", code.String(),
		"duration", duration.String(),
	}
	if err != nil {
		attrs = append(attrs, logger.WithError(err))
		log.Warn("rpc call failed", attrs...)
		return
	}
	log.Info("rpc call", attrs...)
}

// ============================================================================
// Recovery Interceptor
// ============================================================================

// RecoveryUnaryInterceptor catches panics and converts them to gRPC errors.
func RecoveryUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				requestID := RequestIDFromContext(ctx)
				log.Error("rpc panic",
					"request_id", requestID,
					"method", info.FullMethod,
					"panic", r,
					logger.WithStack(),
				)

				// Return internal error (don't leak panic details to client)
				err = status.Errorf(codes.Internal, "internal server error (request_id: %s)", requestID)
			}
		}()

		return handler(ctx, req)
	}
}

// RecoveryStreamInterceptor catches panics in streaming RPCs.
func RecoveryStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestID := RequestIDFromContext(ss.Context())
				log.Error("rpc panic",
					"request_id", requestID,
					"method", info.FullMethod,
					"panic", r,
					logger.WithStack(),
				)

				err = status.Errorf(codes.Internal, "internal server error (request_id: %s)", requestID)
			}
		}()

		return handler(srv, ss)
	}
}

// ============================================================================
// Rate Limiting Interceptor
// ============================================================================

// RateLimiter provides per-peer rate limiting.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int

	// Cleanup old limiters periodically
	lastCleanup time.Time
	cleanupAge  time.Duration
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:    make(map[string]*rate.Limiter),
		rps:         requestsPerSecond,
		burst:       burst,
		lastCleanup: time.Now(),
		cleanupAge:  10 * time.Minute,
	}
}

// Allow checks if the request should be allowed for the given key.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Periodic cleanup
	if time.Since(rl.lastCleanup) > rl.cleanupAge {
		rl.cleanup()
	}

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(rl.rps), rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter.Allow()
}

func (rl *RateLimiter) cleanup() {
	// Simple cleanup: just reset the map
	// A more sophisticated implementation would track last access times
	if len(rl.limiters) > 10000 {
		rl.limiters = make(map[string]*rate.Limiter)
	}
	rl.lastCleanup = time.Now()
}

// RateLimitUnaryInterceptor applies rate limiting to unary RPCs.
func RateLimitUnaryInterceptor(limiter *RateLimiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !limiter.Allow(getRateLimitKey(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}

		return handler(ctx, req)
	}
}

// RateLimitStreamInterceptor applies rate limiting to streaming RPCs.
func RateLimitStreamInterceptor(limiter *RateLimiter) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !limiter.Allow(getRateLimitKey(ss.Context())) {
			return status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}

		return handler(srv, ss)
	}
}

func getRateLimitKey(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return "ip:" + p.Addr.String()
	}
	return "unknown"
}

// ============================================================================
// Wrapped Server Stream
// ============================================================================

// wrappedServerStream wraps a grpc.ServerStream to override the context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
