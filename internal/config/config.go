package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Youdao    YoudaoConfig    `yaml:"youdao"`
	History   HistoryConfig   `yaml:"history"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Accept-Language"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds account and token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"dictlookup"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// YoudaoConfig holds the translation provider endpoint, credentials and
// retry policy. Credentials are only ever read from here.
type YoudaoConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"YOUDAO_BASE_URL"    env-default:"https://openapi.youdao.com/api"`
	AppKey     string        `yaml:"app_key"     env:"YOUDAO_APP_KEY"     env-required:"true"`
	AppSecret  string        `yaml:"app_secret"  env:"YOUDAO_APP_SECRET"  env-required:"true"`
	Timeout    time.Duration `yaml:"timeout"     env:"YOUDAO_TIMEOUT"     env-default:"10s"`
	MaxRetries int           `yaml:"max_retries" env:"YOUDAO_MAX_RETRIES" env-default:"3"`
	BaseDelay  time.Duration `yaml:"base_delay"  env:"YOUDAO_BASE_DELAY"  env-default:"1s"`
	MaxDelay   time.Duration `yaml:"max_delay"   env:"YOUDAO_MAX_DELAY"   env-default:"5s"`
	MaxJitter  time.Duration `yaml:"max_jitter"  env:"YOUDAO_MAX_JITTER"  env-default:"100ms"`
	Ext        string        `yaml:"ext"         env:"YOUDAO_EXT"         env-default:"mp3"`
	Voice      string        `yaml:"voice"       env:"YOUDAO_VOICE"       env-default:"0"`
	Strict     bool          `yaml:"strict"      env:"YOUDAO_STRICT"      env-default:"true"`
	VocabID    string        `yaml:"vocab_id"    env:"YOUDAO_VOCAB_ID"    env-default:"computers"`
}

// HistoryConfig holds per-user search history settings.
type HistoryConfig struct {
	MaxItems           int `yaml:"max_items"            env:"HISTORY_MAX_ITEMS"            env-default:"50"`
	DefaultSuggestions int `yaml:"default_suggestions"  env:"HISTORY_DEFAULT_SUGGESTIONS"  env-default:"5"`
	MaxSuggestions     int `yaml:"max_suggestions"      env:"HISTORY_MAX_SUGGESTIONS"      env-default:"20"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	SearchPerMinute int           `yaml:"search_per_minute" env:"RATE_LIMIT_SEARCH_PER_MINUTE" env-default:"60"`
	AuthPerMinute   int           `yaml:"auth_per_minute"   env:"RATE_LIMIT_AUTH_PER_MINUTE"   env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
