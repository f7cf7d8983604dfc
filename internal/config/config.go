package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Portal    PortalConfig    `yaml:"portal"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// AuthRateLimit caps register/login/check-email requests per client IP per minute. 0 disables it.
	AuthRateLimit int `yaml:"auth_rate_limit" env:"SERVER_AUTH_RATE_LIMIT" env-default:"20"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds password hashing and access token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"jobportal"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SchedulerConfig controls the in-process expiry reminder.
type SchedulerConfig struct {
	Enabled            bool   `yaml:"enabled"              env:"SCHEDULER_ENABLED"              env-default:"true"`
	ExpiryReminderCron string `yaml:"expiry_reminder_cron" env:"SCHEDULER_EXPIRY_REMINDER_CRON" env-default:"0 0 * * *"`
	ReminderDaysAhead  int    `yaml:"reminder_days_ahead"  env:"SCHEDULER_REMINDER_DAYS_AHEAD"  env-default:"2"`
}

// PortalConfig holds job portal business settings.
type PortalConfig struct {
	MaxBulkUpdate    int `yaml:"max_bulk_update"    env:"PORTAL_MAX_BULK_UPDATE"    env-default:"200"`
	MaxNoteLength    int `yaml:"max_note_length"    env:"PORTAL_MAX_NOTE_LENGTH"    env-default:"2000"`
	MaxCoverLetter   int `yaml:"max_cover_letter"   env:"PORTAL_MAX_COVER_LETTER"   env-default:"5000"`
	MatchFanoutLimit int `yaml:"match_fanout_limit" env:"PORTAL_MATCH_FANOUT_LIMIT" env-default:"1000"`
}
