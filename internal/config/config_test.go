package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ==================== Types Tests ====================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	// Log configuration
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected log format 'json', got %q", cfg.Log.Format)
	}
	if cfg.Log.Output != "stdout" {
		t.Errorf("expected log output 'stdout', got %q", cfg.Log.Output)
	}
	if cfg.Log.MaxSizeMB != 100 {
		t.Errorf("expected log max size 100, got %d", cfg.Log.MaxSizeMB)
	}
	if len(cfg.Log.RedactFields) == 0 {
		t.Error("expected redact fields to have default values")
	}

	// Server configuration
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected server host '0.0.0.0', got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected server port 9000, got %d", cfg.Server.Port)
	}

	// Mongo configuration
	if cfg.Database.Mongo.Host != "localhost" {
		t.Errorf("expected mongo host 'localhost', got %q", cfg.Database.Mongo.Host)
	}
	if cfg.Database.Mongo.Port != 27017 {
		t.Errorf("expected mongo port 27017, got %d", cfg.Database.Mongo.Port)
	}
	if cfg.Database.Mongo.Source != "admin" {
		t.Errorf("expected mongo auth source 'admin', got %q", cfg.Database.Mongo.Source)
	}

	// Storage configuration
	if cfg.Storage.Bucket != "sciodb" {
		t.Errorf("expected storage bucket 'sciodb', got %q", cfg.Storage.Bucket)
	}

	// Authentication defaults to oauth2 mode
	if cfg.Authentication.Type != "oauth2" {
		t.Errorf("expected authentication type 'oauth2', got %q", cfg.Authentication.Type)
	}
}

// ==================== Loader Tests ====================

func TestLoadDefaultsWithoutFile(t *testing.T) {
	// Run in an empty directory so no stray config.yaml is picked up
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(oldWd) }()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected default port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Mongo.Database != "sciodb" {
		t.Errorf("expected default database 'sciodb', got %q", cfg.Database.Mongo.Database)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	content := `
server:
  host: 127.0.0.1
  port: 1234
database:
  mongo:
    host: mongo.example.com
    port: 27018
    username: scio
    database: artifacts
    source: admin
storage:
  endpoint: http://localhost:9000
  bucket: test-bucket
oauth2_auth:
  user_info_endpoint: https://auth.example.com/userinfo
authentication:
  type: debug
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host '127.0.0.1', got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 1234 {
		t.Errorf("expected port 1234, got %d", cfg.Server.Port)
	}
	if cfg.Database.Mongo.Host != "mongo.example.com" {
		t.Errorf("expected mongo host 'mongo.example.com', got %q", cfg.Database.Mongo.Host)
	}
	if cfg.Database.Mongo.Port != 27018 {
		t.Errorf("expected mongo port 27018, got %d", cfg.Database.Mongo.Port)
	}
	if cfg.Storage.Endpoint != "http://localhost:9000" {
		t.Errorf("expected storage endpoint 'http://localhost:9000', got %q", cfg.Storage.Endpoint)
	}
	if cfg.Storage.Bucket != "test-bucket" {
		t.Errorf("expected bucket 'test-bucket', got %q", cfg.Storage.Bucket)
	}
	if cfg.OAuth2Auth.UserInfoEndpoint != "https://auth.example.com/userinfo" {
		t.Errorf("unexpected userinfo endpoint %q", cfg.OAuth2Auth.UserInfoEndpoint)
	}
	if cfg.Authentication.Type != "debug" {
		t.Errorf("expected authentication type 'debug', got %q", cfg.Authentication.Type)
	}

	// Defaults still apply for unset sections
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

// ==================== Secrets Tests ====================

func TestResolveSecretsEnv(t *testing.T) {
	t.Setenv("SCIODB_TEST_SECRET", "s3cr3t")

	cfg := DefaultConfig()
	cfg.Database.Mongo.Username = "env://SCIODB_TEST_SECRET"

	if err := resolveSecrets(cfg); err != nil {
		t.Fatalf("resolveSecrets failed: %v", err)
	}
	if cfg.Database.Mongo.Username != "s3cr3t" {
		t.Errorf("expected resolved secret, got %q", cfg.Database.Mongo.Username)
	}
}

func TestResolveSecretsEnvMissing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Mongo.Username = "env://SCIODB_DEFINITELY_NOT_SET"

	if err := resolveSecrets(cfg); err == nil {
		t.Fatal("expected error for unset environment variable")
	}
}

func TestResolveSecretsFile(t *testing.T) {
	tmpDir := t.TempDir()
	secretPath := filepath.Join(tmpDir, "secret.txt")
	if err := os.WriteFile(secretPath, []byte("  file-secret\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.OAuth2Auth.UserInfoEndpoint = "file://" + secretPath

	if err := resolveSecrets(cfg); err != nil {
		t.Fatalf("resolveSecrets failed: %v", err)
	}
	if cfg.OAuth2Auth.UserInfoEndpoint != "file-secret" {
		t.Errorf("expected trimmed file secret, got %q", cfg.OAuth2Auth.UserInfoEndpoint)
	}
}

// ==================== Watcher Tests ====================

func TestWatcherReload(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	var got *Config
	w.OnChange(func(c *Config) { got = c })

	if err := os.WriteFile(cfgPath, []byte("server:\n  port: 9001\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := w.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if got == nil {
		t.Fatal("expected callback to fire on reload")
	}
	if got.Server.Port != 9001 {
		t.Errorf("expected reloaded port 9001, got %d", got.Server.Port)
	}
	if w.CurrentConfig() == nil {
		t.Error("expected CurrentConfig to be set after reload")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	if _, err := NewWatcher("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
