package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sciodb/internal/config"
	"sciodb/internal/logger"
	"sciodb/internal/version"
)

var (
	cfgFile     string
	showVersion bool
)

func init() {
	flag.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sciodbd/config.yaml)")
	flag.BoolVar(&showVersion, "version", false, "show version")
}

func main() {
	flag.Parse()

	if showVersion {
		info := version.Get()
		fmt.Printf("sciodbd %s\n", info.String())
		fmt.Println(info.Full())
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = log.Close() }()

	// Create daemon context
	oc := logger.NewOperationContext("sciodbd")
	ctx := logger.WithOperationContext(context.Background(), oc)
	ctx = logger.WithLogger(ctx, log)

	// Log startup
	log.Info("starting sciodbd",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"config_file", config.ConfigFileUsed(),
		"request_id", oc.RequestID,
	)

	log.Debug("storage configuration",
		"mongo_host", cfg.Database.Mongo.Host,
		"mongo_port", cfg.Database.Mongo.Port,
		"mongo_database", cfg.Database.Mongo.Database,
		"bucket", cfg.Storage.Bucket,
		"endpoint", cfg.Storage.Endpoint,
	)

	log.Debug("authentication configuration",
		"type", cfg.Authentication.Type,
		"userinfo_endpoint", cfg.OAuth2Auth.UserInfoEndpoint,
	)

	// Create and start daemon
	daemon := NewDaemon(cfg, log)

	if err := daemon.Start(ctx); err != nil {
		log.Error("failed to start daemon", logger.ErrorGroup(err, false))
		os.Exit(1)
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("received shutdown signal",
		"signal", sig.String(),
		"request_id", oc.RequestID,
	)

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := daemon.Stop(shutdownCtx); err != nil {
		log.Error("error during shutdown", logger.WithError(err))
	}

	log.Info("sciodbd stopped", "request_id", oc.RequestID)
}
