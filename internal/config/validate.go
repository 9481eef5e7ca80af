package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const maxNotifyTimeout = 10 * time.Second

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.RateLimit.MutationsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.mutations_per_minute must be > 0 (got %d)", c.RateLimit.MutationsPerMinute)
	}

	if err := c.Restoration.validate(); err != nil {
		return fmt.Errorf("restoration: %w", err)
	}

	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	if c.Storage.Enabled() && c.Storage.PresignTTL <= 0 {
		return fmt.Errorf("storage.presign_ttl must be > 0 (got %v)", c.Storage.PresignTTL)
	}

	if c.Telemetry.Enabled && c.Telemetry.ExportInterval <= 0 {
		return fmt.Errorf("telemetry.export_interval must be > 0 (got %v)", c.Telemetry.ExportInterval)
	}

	return nil
}

func (r *RestorationConfig) validate() error {
	u, err := url.Parse(r.PhotoOrigin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("photo_origin must be an absolute URL (got %q)", r.PhotoOrigin)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("photo_origin must not contain a path (got %q)", r.PhotoOrigin)
	}
	r.PhotoOrigin = strings.TrimRight(r.PhotoOrigin, "/")

	if !strings.HasPrefix(r.PhotoPathPrefix, "/") {
		return fmt.Errorf("photo_path_prefix must start with / (got %q)", r.PhotoPathPrefix)
	}
	if r.ArchiveAfterDays <= 0 {
		return fmt.Errorf("archive_after_days must be > 0 (got %d)", r.ArchiveAfterDays)
	}
	if r.ArchiveBatchSize <= 0 {
		return fmt.Errorf("archive_batch_size must be > 0 (got %d)", r.ArchiveBatchSize)
	}
	return nil
}

func (n *NotificationConfig) validate() error {
	if n.Timeout <= 0 || n.Timeout > maxNotifyTimeout {
		return fmt.Errorf("timeout must be in (0, %v] (got %v)", maxNotifyTimeout, n.Timeout)
	}
	if n.WebhookURL == "" {
		return nil
	}
	u, err := url.Parse(n.WebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook_url must be an http(s) URL (got %q)", n.WebhookURL)
	}
	return nil
}
