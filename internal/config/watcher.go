package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watcher watches for configuration file changes and triggers callbacks.
type Watcher struct {
	v          *viper.Viper
	cfgFile    string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	lastConfig *Config
}

// NewWatcher creates a new configuration watcher.
func NewWatcher(cfgFile string) (*Watcher, error) {
	v := newViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &Watcher{
		v:         v,
		cfgFile:   cfgFile,
		callbacks: []func(*Config){},
	}, nil
}

// OnChange registers a callback to be called when configuration changes.
// The callback receives the new configuration struct.
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for configuration changes.
func (w *Watcher) Start() error {
	w.v.OnConfigChange(func(e fsnotify.Event) {
		w.handleChange()
	})

	w.v.WatchConfig()

	return nil
}

// handleChange is called when the configuration file changes.
func (w *Watcher) handleChange() {
	w.mu.RLock()
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	cfg, err := w.loadConfig()
	if err != nil {
		// Keep the previous config on a bad reload
		return
	}

	for _, cb := range callbacks {
		cb(cfg)
	}

	w.mu.Lock()
	w.lastConfig = cfg
	w.mu.Unlock()
}

// loadConfig unmarshals the current viper state into a Config.
func (w *Watcher) loadConfig() (*Config, error) {
	defaults := DefaultConfig()
	setViperDefaults(w.v, defaults)

	var cfg Config
	if err := w.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := resolveSecrets(&cfg); err != nil {
		return nil, fmt.Errorf("failed to resolve secrets: %w", err)
	}

	return &cfg, nil
}

// CurrentConfig returns the last loaded configuration.
func (w *Watcher) CurrentConfig() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastConfig
}

// Reload forces a configuration reload.
func (w *Watcher) Reload() error {
	if err := w.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	w.handleChange()
	return nil
}
