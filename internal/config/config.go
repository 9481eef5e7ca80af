package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Restoration  RestorationConfig  `yaml:"restoration"`
	Notification NotificationConfig `yaml:"notification"`
	Storage      StorageConfig      `yaml:"storage"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
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
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout bounds every query server-side; zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"10s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"restoration-backend"`
}

// AuthConfig holds operator token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"restoration-ops"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig caps mutating requests per operator.
type RateLimitConfig struct {
	MutationsPerMinute int           `yaml:"mutations_per_minute" env:"RATE_LIMIT_MUTATIONS_PER_MINUTE" env-default:"120"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// RestorationConfig holds restoration pipeline settings.
type RestorationConfig struct {
	PhotoOrigin      string `yaml:"photo_origin"       env:"RESTORATION_PHOTO_ORIGIN"       env-required:"true"`
	PhotoPathPrefix  string `yaml:"photo_path_prefix"  env:"RESTORATION_PHOTO_PATH_PREFIX"  env-default:"/restorations/"`
	ArchiveAfterDays int    `yaml:"archive_after_days" env:"RESTORATION_ARCHIVE_AFTER_DAYS" env-default:"60"`
	ArchiveBatchSize int    `yaml:"archive_batch_size" env:"RESTORATION_ARCHIVE_BATCH_SIZE" env-default:"500"`
}

// ArchiveAfter returns the retention before terminal items are archived.
func (c RestorationConfig) ArchiveAfter() time.Duration {
	return time.Duration(c.ArchiveAfterDays) * 24 * time.Hour
}

// NotificationConfig holds the outbound webhook settings. An empty URL
// disables notifications.
type NotificationConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT"     env-default:"5s"`
}

// StorageConfig holds the S3-compatible photo bucket settings. An empty
// bucket disables upload URLs.
type StorageConfig struct {
	Endpoint        string        `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	Region          string        `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Bucket          string        `yaml:"bucket"            env:"STORAGE_BUCKET"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `yaml:"use_path_style"    env:"STORAGE_USE_PATH_STYLE"    env-default:"true"`
	PresignTTL      time.Duration `yaml:"presign_ttl"       env:"STORAGE_PRESIGN_TTL"       env-default:"15m"`
}

// Enabled reports whether photo uploads are configured.
func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// TelemetryConfig holds OpenTelemetry metric export settings.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"OTEL_ENABLED"                env-default:"false"`
	Stdout         bool          `yaml:"stdout"          env:"OTEL_STDOUT"                 env-default:"false"`
	OTLPEndpoint   string        `yaml:"otlp_endpoint"   env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string        `yaml:"service_name"    env:"OTEL_SERVICE_NAME"           env-default:"restoration-backend"`
	ExportInterval time.Duration `yaml:"export_interval" env:"OTEL_EXPORT_INTERVAL"        env-default:"30s"`
}
