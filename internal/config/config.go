package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is the immutable process configuration, built once at startup
// and injected into the adapters. Business logic never reads the
// environment directly.
type Config struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
	DatabaseURL string
	AdminKey    string
	Port        string
}

// Load reads the configuration from environment variables. Every
// Firebase credential and the admin key are required; a missing one is
// a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		ProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
		ClientEmail: os.Getenv("FIREBASE_CLIENT_EMAIL"),
		PrivateKey:  normalizePrivateKey(os.Getenv("FIREBASE_PRIVATE_KEY")),
		DatabaseURL: os.Getenv("FIREBASE_DATABASE_URL"),
		AdminKey:    os.Getenv("ADMIN_API_KEY"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var missing []string
	if cfg.ProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if cfg.ClientEmail == "" {
		missing = append(missing, "FIREBASE_CLIENT_EMAIL")
	}
	if cfg.PrivateKey == "" {
		missing = append(missing, "FIREBASE_PRIVATE_KEY")
	}
	if cfg.DatabaseURL == "" {
		missing = append(missing, "FIREBASE_DATABASE_URL")
	}
	if cfg.AdminKey == "" {
		missing = append(missing, "ADMIN_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// normalizePrivateKey turns literal "\n" sequences into real newlines.
// Deployment environments store the PEM key on a single line.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
