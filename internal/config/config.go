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
	JobsAPIURL    string
	TemplatesGlob string
	StaticDir     string
	LogLevel      string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		JobsAPIURL:    os.Getenv("JOBS_API_URL"),
		TemplatesGlob: os.Getenv("TEMPLATES_GLOB"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
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
	if cfg.JobsAPIURL == "" {
		cfg.JobsAPIURL = "https://www.arbeitnow.com/api/job-board-api"
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "web/templates/*.html"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./web/static"
	}

	return cfg
}
