package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// App is the application name used for config search paths and env prefixes
const App = "sciodbd"

// configSearchPaths returns the paths to search for config files in order of
// precedence (later paths have higher priority in Viper)
func configSearchPaths() []string {
	paths := []string{}

	// System-wide (lowest priority)
	paths = append(paths, filepath.Join("/etc", App))

	// User-specific
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", App))
	}

	// Current directory (highest priority for files)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}

	return paths
}

// UserConfigDir returns the user-specific config directory
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", App), nil
}

// newViper creates and configures a new Viper instance
func newViper() *viper.Viper {
	v := viper.New()

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml") // default, but will auto-detect

	// Add search paths
	for _, path := range configSearchPaths() {
		v.AddConfigPath(path)
	}

	// Environment variable settings
	v.SetEnvPrefix(strings.ToUpper(App))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads the daemon configuration. cfgFile overrides the search paths
// when non-empty.
func Load(cfgFile string) (*Config, error) {
	v := newViper()

	// Set defaults
	defaults := DefaultConfig()
	setViperDefaults(v, defaults)

	// Load config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Resolve any secrets
	if err := resolveSecrets(&cfg); err != nil {
		return nil, fmt.Errorf("failed to resolve secrets: %w", err)
	}

	return &cfg, nil
}

// setViperDefaults sets default values in Viper from a config struct
func setViperDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.output", c.Log.Output)
	v.SetDefault("log.max_size_mb", c.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", c.Log.MaxBackups)
	v.SetDefault("log.max_age_days", c.Log.MaxAgeDays)
	v.SetDefault("log.enable_caller", c.Log.EnableCaller)
	v.SetDefault("log.redact_fields", c.Log.RedactFields)
	v.SetDefault("server.host", c.Server.Host)
	v.SetDefault("server.port", c.Server.Port)
	v.SetDefault("metrics.enabled", c.Metrics.Enabled)
	v.SetDefault("metrics.host", c.Metrics.Host)
	v.SetDefault("metrics.port", c.Metrics.Port)
	v.SetDefault("database.mongo.host", c.Database.Mongo.Host)
	v.SetDefault("database.mongo.port", c.Database.Mongo.Port)
	v.SetDefault("database.mongo.username", c.Database.Mongo.Username)
	v.SetDefault("database.mongo.database", c.Database.Mongo.Database)
	v.SetDefault("database.mongo.source", c.Database.Mongo.Source)
	v.SetDefault("storage.endpoint", c.Storage.Endpoint)
	v.SetDefault("storage.bucket", c.Storage.Bucket)
	v.SetDefault("oauth2_auth.user_info_endpoint", c.OAuth2Auth.UserInfoEndpoint)
	v.SetDefault("authentication.type", c.Authentication.Type)
	v.SetDefault("rate_limit.enabled", c.RateLimit.Enabled)
	v.SetDefault("rate_limit.requests_per_second", c.RateLimit.RequestsPerSecond)
	v.SetDefault("rate_limit.burst", c.RateLimit.Burst)
}

// ConfigFileUsed returns the config file path that was loaded, if any
func ConfigFileUsed() string {
	v := newViper()
	_ = v.ReadInConfig()
	return v.ConfigFileUsed()
}
