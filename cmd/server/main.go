package main

import (
	"fmt"

	"reviewhub/internal/config"
	"reviewhub/internal/database"
	"reviewhub/internal/jobs"
	"reviewhub/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := database.Open(cfg.DBDSN, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	fetcher := jobs.NewClient(cfg.JobsAPIURL, nil)

	r := server.NewRouter(cfg, db, log, fetcher)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
