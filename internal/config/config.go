// Package config handles runtime settings: development defaults, an optional
// YAML overlay, and finally environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

const (
	BackendDisk = "disk"
	BackendS3   = "s3"
)

type Config struct {
	Port        string `env:"PORT" yaml:"port"`
	DatabaseURL string `env:"DATABASE_URL" yaml:"database_url"`

	// SecureCookies switches the session cookie to Secure + SameSite=None,
	// which hosted deployments behind HTTPS need for cross-site frontends.
	SecureCookies bool          `env:"SECURE_COOKIES" yaml:"secure_cookies"`
	SessionTTL    time.Duration `env:"SESSION_TTL" yaml:"session_ttl"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," yaml:"allowed_origins"`

	// Login throttle, per remote IP.
	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE" yaml:"login_rate_per_minute"`
	LoginBurst         int `env:"LOGIN_BURST" yaml:"login_burst"`

	// Avatar storage. Disk is the default; "s3" sends uploads to an
	// S3-compatible bucket instead.
	AvatarBackend      string `env:"AVATAR_BACKEND" yaml:"avatar_backend"`
	UploadDir          string `env:"UPLOAD_DIR" yaml:"upload_dir"`
	PublicUploadPrefix string `env:"PUBLIC_UPLOAD_PREFIX" yaml:"public_upload_prefix"`
	DefaultAvatarPath  string `env:"DEFAULT_AVATAR_PATH" yaml:"default_avatar_path"`

	S3Bucket    string `env:"S3_BUCKET" yaml:"s3_bucket"`
	S3Region    string `env:"S3_REGION" yaml:"s3_region"`
	S3AccessKey string `env:"S3_ACCESS_KEY" yaml:"s3_access_key"`
	S3SecretKey string `env:"S3_SECRET_KEY" yaml:"s3_secret_key"`
	S3Endpoint  string `env:"S3_ENDPOINT" yaml:"s3_endpoint"`
}

func Default() Config {
	return Config{
		Port:               "5050",
		SessionTTL:         6 * time.Hour,
		LoginRatePerMinute: 10,
		LoginBurst:         5,
		AvatarBackend:      BackendDisk,
		UploadDir:          "uploads",
		PublicUploadPrefix: "/uploads",
		DefaultAvatarPath:  "/images/default.png",
		S3Region:           "us-east-1",
	}
}

// Load builds a Config by applying defaults, then overlaying values from the
// YAML file named by CONFIG_FILE (if any), then environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.AvatarBackend != BackendDisk && cfg.AvatarBackend != BackendS3 {
		return cfg, fmt.Errorf("unknown avatar backend %q", cfg.AvatarBackend)
	}
	if cfg.AvatarBackend == BackendS3 && cfg.S3Bucket == "" {
		return cfg, fmt.Errorf("avatar backend s3 requires S3_BUCKET")
	}

	return cfg, nil
}
