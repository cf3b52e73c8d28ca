package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Caption  CaptionConfig  `yaml:"caption"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port            int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"      env:"SERVER_IDLE_TIMEOUT"      env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"   env:"SERVER_RATE_PER_MINUTE"   env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CaptionConfig holds captioning gateway settings. The gateway speaks the
// chat-completions protocol and must support image_url content parts.
type CaptionConfig struct {
	BaseURL string        `yaml:"base_url" env:"CAPTION_BASE_URL" env-default:"https://ai.gateway.lovable.dev/v1"`
	APIKey  string        `yaml:"api_key"  env:"CAPTION_API_KEY"  env-required:"true"`
	Model   string        `yaml:"model"    env:"CAPTION_MODEL"    env-default:"google/gemini-2.5-flash"`
	Timeout time.Duration `yaml:"timeout"  env:"CAPTION_TIMEOUT"  env-default:"30s"`
}

// CORSConfig holds CORS settings. The defaults mirror what the web client
// sends: the Supabase-style authorization/apikey/x-client-info headers.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"authorization, x-client-info, apikey, content-type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
