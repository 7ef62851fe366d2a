// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"sciodb/internal/config"
	"sciodb/internal/grpc/middleware"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

// shutdownGracePeriod is how long a graceful stop may drain connections
// before the server is stopped hard.
const shutdownGracePeriod = 30 * time.Second

// Server is the gRPC server with its listener, metrics endpoint and
// lifecycle management.
type Server struct {
	cfg config.Config

	grpcServer *grpc.Server
	services   *ServiceServers

	tcpListener net.Listener

	// Metrics
	metricsServer   *http.Server
	metricsRegistry *prometheus.Registry
	grpcMetrics     *grpc_prometheus.ServerMetrics

	// Lifecycle
	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// NewServer creates a gRPC server with all interceptors configured and all
// services registered.
func NewServer(cfg config.Config, deps Deps) *Server {
	s := &Server{
		cfg:      cfg,
		services: NewServiceServers(deps),
	}

	if cfg.Metrics.Enabled {
		s.metricsRegistry = prometheus.NewRegistry()
		s.grpcMetrics = grpc_prometheus.NewServerMetrics()
		s.grpcMetrics.EnableHandlingTimeHistogram()

		s.metricsRegistry.MustRegister(s.grpcMetrics)
		s.metricsRegistry.MustRegister(prometheus.NewGoCollector())
		s.metricsRegistry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.buildUnaryInterceptors()...),
		grpc.ChainStreamInterceptor(s.buildStreamInterceptors()...),
	)

	s.services.Register(s.grpcServer)

	// Initialize metrics after service registration
	if s.grpcMetrics != nil {
		s.grpcMetrics.InitializeMetrics(s.grpcServer)
	}

	return s
}

// buildUnaryInterceptors creates the chain of unary interceptors.
func (s *Server) buildUnaryInterceptors() []grpc.UnaryServerInterceptor {
	var interceptors []grpc.UnaryServerInterceptor

	// 1. Metrics (first, to capture everything)
	if s.grpcMetrics != nil {
		interceptors = append(interceptors, s.grpcMetrics.UnaryServerInterceptor())
	}

	// 2. Recovery (catch panics early)
	interceptors = append(interceptors, middleware.RecoveryUnaryInterceptor())

	// 3. Request ID
	interceptors = append(interceptors, middleware.RequestIDUnaryInterceptor())

	// 4. Logging
	interceptors = append(interceptors, middleware.LoggingUnaryInterceptor())

	// 5. Rate limiting
	if s.cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(s.cfg.RateLimit.RequestsPerSecond, s.cfg.RateLimit.Burst)
		interceptors = append(interceptors, middleware.RateLimitUnaryInterceptor(limiter))
	}

	return interceptors
}

// buildStreamInterceptors creates the chain of stream interceptors.
func (s *Server) buildStreamInterceptors() []grpc.StreamServerInterceptor {
	var interceptors []grpc.StreamServerInterceptor

	if s.grpcMetrics != nil {
		interceptors = append(interceptors, s.grpcMetrics.StreamServerInterceptor())
	}

	interceptors = append(interceptors, middleware.RecoveryStreamInterceptor())
	interceptors = append(interceptors, middleware.RequestIDStreamInterceptor())
	interceptors = append(interceptors, middleware.LoggingStreamInterceptor())

	if s.cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(s.cfg.RateLimit.RequestsPerSecond, s.cfg.RateLimit.Burst)
		interceptors = append(interceptors, middleware.RateLimitStreamInterceptor(limiter))
	}

	return interceptors
}

// Start begins listening on the configured endpoints.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.running = true
	s.mu.Unlock()

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.tcpListener = lis

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.grpcServer.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			log.Error("grpc server error", "error", err)
		}
	}()
	log.Info("grpc server listening", "address", addr)

	if s.cfg.Metrics.Enabled {
		if err := s.startMetricsServer(); err != nil {
			s.stopTCPListener()
			return fmt.Errorf("start metrics server: %w", err)
		}
	}

	return nil
}

// startMetricsServer starts the Prometheus metrics HTTP server.
func (s *Server) startMetricsServer() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Metrics.Host, s.cfg.Metrics.Port)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.metricsRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	s.metricsServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server error", "error", err)
		}
	}()
	log.Info("prometheus metrics available", "address", addr, "path", "/metrics")

	return nil
}

// Stop gracefully stops the server, draining connections for up to the
// grace period before forcing the stop.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGracePeriod)
	defer cancel()

	var errs []error

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		// Graceful shutdown completed
	case <-shutdownCtx.Done():
		s.grpcServer.Stop()
		errs = append(errs, fmt.Errorf("graceful shutdown timed out, forced stop"))
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	s.stopTCPListener()
	s.wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

func (s *Server) stopTCPListener() {
	if s.tcpListener != nil {
		_ = s.tcpListener.Close()
		s.tcpListener = nil
	}
}

// Services returns the service servers.
func (s *Server) Services() *ServiceServers {
	return s.services
}

// Address returns the TCP listener address.
func (s *Server) Address() string {
	if s.tcpListener != nil {
		return s.tcpListener.Addr().String()
	}
	return ""
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
