package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"60"`
}

// EngineConfig holds standardization engine settings.
type EngineConfig struct {
	// DefaultCutoff is the similarity cutoff used when a request omits one.
	DefaultCutoff int `yaml:"default_cutoff" env:"ENGINE_DEFAULT_CUTOFF" env-default:"70"`
	// MaxUploadBytes bounds the accepted spreadsheet size.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"ENGINE_MAX_UPLOAD_BYTES" env-default:"26214400"`
	// CacheSize is the number of memoized results kept; 0 disables caching.
	CacheSize int `yaml:"cache_size" env:"ENGINE_CACHE_SIZE" env-default:"16"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
