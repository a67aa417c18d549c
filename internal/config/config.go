package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr          = ":8080"
	defaultDSN           = "rental.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultAdminUsername = "admin"
	defaultAdminPassword = "login"
)

// Config carries everything the API needs from the environment. Secrets have
// dev-only defaults; production deployments must override them.
type Config struct {
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// Shared administrator credential pair. There is a single admin
	// capability role, not per-admin accounts.
	AdminUsername string
	AdminPassword string

	// Mail relay (contact form). Empty ids disable the endpoint.
	MailServiceID  string
	MailTemplateID string
	MailPublicKey  string

	// Comma-separated extra CORS origins.
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getEnv("ADDR", defaultAddr),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:      getEnv("JWT_SECRET", defaultJWTSecret),
		AdminUsername:  getEnv("ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:  getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		MailServiceID:  os.Getenv("MAIL_SERVICE_ID"),
		MailTemplateID: os.Getenv("MAIL_TEMPLATE_ID"),
		MailPublicKey:  os.Getenv("MAIL_PUBLIC_KEY"),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
