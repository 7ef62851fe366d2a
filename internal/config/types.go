package config

// LogConfig holds logging configuration for the daemon
type LogConfig struct {
	Level        string   `mapstructure:"level"`         // debug, info, warn, error
	Format       string   `mapstructure:"format"`        // text, json
	Output       string   `mapstructure:"output"`        // stdout, stderr, or file path
	FilePath     string   `mapstructure:"file_path"`     // path to log file (in addition to output)
	MaxSizeMB    int      `mapstructure:"max_size_mb"`   // max size in MB before rotation
	MaxBackups   int      `mapstructure:"max_backups"`   // max number of old log files to keep
	MaxAgeDays   int      `mapstructure:"max_age_days"`  // max days to retain old log files
	EnableCaller bool     `mapstructure:"enable_caller"` // include source file/line in logs
	RedactFields []string `mapstructure:"redact_fields"` // field names to redact from logs
}

// ServerConfig holds the gRPC listener configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

// MongoConfig holds the MongoDB connection configuration.
// The password is never stored in the config file; it is read from the
// MONGO_PASSWORD environment variable (or a secret reference).
type MongoConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Database string `mapstructure:"database"`
	Source   string `mapstructure:"source"` // authSource for authentication
}

// DatabaseConfig holds the metadata store configuration
type DatabaseConfig struct {
	Mongo MongoConfig `mapstructure:"mongo"`
}

// StorageConfig holds the object storage (S3-compatible) configuration.
// AccessKey and SecretKey accept secret references (env://, file://); when
// both are empty the standard AWS credential chain applies
// (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, shared config, IAM roles).
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"` // custom S3 endpoint, empty for AWS
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// OAuth2Config holds the OAuth2 userinfo endpoint configuration
type OAuth2Config struct {
	UserInfoEndpoint string `mapstructure:"user_info_endpoint"`
}

// AuthenticationConfig selects the request authentication mode
type AuthenticationConfig struct {
	// Type is either "oauth2" (validate bearer tokens against the
	// userinfo endpoint) or "debug" (every request is "testuser").
	Type string `mapstructure:"type"`
}

// RateLimitConfig holds per-caller request rate limiting settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Config is the complete configuration for the sciodbd daemon
type Config struct {
	Log            LogConfig            `mapstructure:"log"`
	Server         ServerConfig         `mapstructure:"server"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Storage        StorageConfig        `mapstructure:"storage"`
	OAuth2Auth     OAuth2Config         `mapstructure:"oauth2_auth"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
}

// DefaultConfig returns sensible defaults for sciodbd
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:        "info",
			Format:       "json",
			Output:       "stdout",
			FilePath:     "",
			MaxSizeMB:    100,
			MaxBackups:   3,
			MaxAgeDays:   28,
			EnableCaller: true,
			RedactFields: []string{"password", "token", "key", "secret", "credential", "auth"},
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 9000,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    9090,
		},
		Database: DatabaseConfig{
			Mongo: MongoConfig{
				Host:     "localhost",
				Port:     27017,
				Username: "root",
				Database: "sciodb",
				Source:   "admin",
			},
		},
		Storage: StorageConfig{
			Endpoint:  "",
			Bucket:    "sciodb",
			AccessKey: "",
			SecretKey: "",
		},
		OAuth2Auth: OAuth2Config{
			UserInfoEndpoint: "",
		},
		Authentication: AuthenticationConfig{
			Type: "oauth2",
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 100,
			Burst:             200,
		},
	}
}
