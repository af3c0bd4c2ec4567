package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// Bootstrap accounts created at first startup when absent. Defaults
	// exist for local runs; deployments override via environment.
	AdminUsername string
	AdminPassword string
	CRMUsername   string
	CRMPassword   string

	TemplateGlob string
	StaticDir    string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin"),
		CRMUsername:   getenv("CRM_USERNAME", "vasu"),
		CRMPassword:   getenv("CRM_PASSWORD", "kaka"),
		TemplateGlob:  getenv("TEMPLATE_GLOB", "web/templates/*.html"),
		StaticDir:     getenv("STATIC_DIR", "web/static"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
