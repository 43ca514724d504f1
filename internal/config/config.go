package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "10000"
	defaultDSN            = "fotokarte.db"
	defaultSessionTTL     = "24h"
	defaultMaxImageWidth  = 1920
	defaultJPEGQuality    = 80
	defaultPNGCompression = 9
	defaultWebPQuality    = 80
	defaultThumbSize      = 300
	defaultMaxImageSize   = 5 * 1024 * 1024 // 5 MiB
)

type Config struct {
	Port        string
	DatabaseURL string

	// Access control. AccessCodeHash (bcrypt) wins over the plaintext code.
	AccessCode     string
	AccessCodeHash string
	SessionTTL     time.Duration

	// Image pipeline.
	MaxImageWidth  int
	JPEGQuality    int
	PNGCompression int
	WebPQuality    int
	ThumbSize      int
	MaxImageSize   int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDSN),
		AccessCode:     strings.TrimSpace(os.Getenv("ACCESS_CODE")),
		AccessCodeHash: strings.TrimSpace(os.Getenv("ACCESS_CODE_HASH")),
	}

	if cfg.AccessCode == "" && cfg.AccessCodeHash == "" {
		return nil, fmt.Errorf("config: neither ACCESS_CODE nor ACCESS_CODE_HASH is set")
	}

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	if cfg.MaxImageWidth, err = parseIntEnv("MAX_IMAGE_WIDTH", defaultMaxImageWidth); err != nil {
		return nil, err
	}
	if cfg.JPEGQuality, err = parseIntEnv("JPEG_QUALITY", defaultJPEGQuality); err != nil {
		return nil, err
	}
	if cfg.PNGCompression, err = parseIntEnv("PNG_COMPRESSION", defaultPNGCompression); err != nil {
		return nil, err
	}
	if cfg.WebPQuality, err = parseIntEnv("WEBP_QUALITY", defaultWebPQuality); err != nil {
		return nil, err
	}
	if cfg.ThumbSize, err = parseIntEnv("THUMB_SIZE", defaultThumbSize); err != nil {
		return nil, err
	}

	maxSize, err := parseIntEnv("MAX_IMAGE_SIZE", defaultMaxImageSize)
	if err != nil {
		return nil, err
	}
	cfg.MaxImageSize = int64(maxSize)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		raw = fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	return d, nil
}
