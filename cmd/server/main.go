package main

import (
	"fmt"
	"os"

	"arcadia-sales/internal/config"
	"arcadia-sales/internal/database"
	"arcadia-sales/internal/server"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg := config.Load()

	store, err := database.Open(postgres.Open(cfg.DBDSN), log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := store.Seed(database.SeedAccounts{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		CRMUsername:   cfg.CRMUsername,
		CRMPassword:   cfg.CRMPassword,
	}); err != nil {
		log.Fatalf("seeding: %v", err)
	}

	r := server.NewRouter(cfg, store, log)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
