package main

import (
	"context"
	"fmt"
	"sync"

	"sciodb/internal/auth"
	"sciodb/internal/config"
	"sciodb/internal/grpc"
	"sciodb/internal/logger"
	"sciodb/internal/storage"
	"sciodb/internal/storage/mongodb"
	"sciodb/internal/storage/s3"
)

// Daemon wires the metadata store, the object store, the authenticator and
// the gRPC server together and manages their lifecycle.
type Daemon struct {
	cfg *config.Config
	log *logger.Logger

	store   *mongodb.Store
	objects *s3.Store
	server  *grpc.Server
	watcher *config.Watcher

	mu      sync.Mutex
	running bool
}

// NewDaemon creates a daemon from the loaded configuration.
func NewDaemon(cfg *config.Config, log *logger.Logger) *Daemon {
	return &Daemon{
		cfg: cfg,
		log: log,
	}
}

// Start connects to the backing stores and starts serving.
func (d *Daemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return fmt.Errorf("daemon already running")
	}

	storage.SetLogger(d.log)
	grpc.SetLogger(d.log)

	store, err := mongodb.Connect(ctx, d.cfg.Database.Mongo)
	if err != nil {
		return logger.WrapError(err, "connect metadata store")
	}
	d.store = store
	d.log.Info("connected to metadata store",
		"host", d.cfg.Database.Mongo.Host,
		"database", d.cfg.Database.Mongo.Database,
	)

	objects, err := s3.New(ctx, d.cfg.Storage)
	if err != nil {
		d.closeStore()
		return logger.WrapError(err, "create object store client")
	}
	d.objects = objects
	d.log.Info("object store configured",
		"bucket", d.cfg.Storage.Bucket,
		"endpoint", d.cfg.Storage.Endpoint,
	)

	authenticator, err := auth.New(d.cfg, store)
	if err != nil {
		d.closeStore()
		return logger.WrapError(err, "create authenticator")
	}
	if d.cfg.Authentication.Type == "debug" {
		d.log.Warn("authentication disabled, every request runs as testuser")
	}

	d.server = grpc.NewServer(*d.cfg, grpc.Deps{
		Store:   store,
		Objects: objects,
		Auth:    authenticator,
	})
	if err := d.server.Start(ctx); err != nil {
		d.closeStore()
		return logger.WrapError(err, "start grpc server")
	}

	d.startConfigWatcher()

	d.running = true
	return nil
}

// startConfigWatcher watches the config file for edits. Most settings need
// a restart to take effect; the watcher makes that visible in the logs.
func (d *Daemon) startConfigWatcher() {
	watcher, err := config.NewWatcher(config.ConfigFileUsed())
	if err != nil {
		d.log.Debug("config watcher not started", "error", err)
		return
	}
	watcher.OnChange(func(cfg *config.Config) {
		d.log.Info("config file changed, restart to apply",
			"config_file", config.ConfigFileUsed(),
		)
	})
	if err := watcher.Start(); err != nil {
		d.log.Warn("failed to start config watcher", "error", err)
		return
	}
	d.watcher = watcher
}

// Stop shuts the daemon down, draining gRPC connections first.
func (d *Daemon) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return nil
	}
	d.running = false

	var errs []error
	if d.server != nil {
		if err := d.server.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop grpc server: %w", err))
		}
	}
	if d.store != nil {
		if err := d.store.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close metadata store: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

func (d *Daemon) closeStore() {
	if d.store != nil {
		_ = d.store.Close(context.Background())
		d.store = nil
	}
}
