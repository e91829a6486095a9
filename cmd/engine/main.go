package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rentaro/lease-engine/internal/app"
	"github.com/rentaro/lease-engine/internal/config"
	"github.com/rentaro/lease-engine/internal/logger"
)

func main() {
	// .env опционален, в проде конфигурация приходит из окружения.
	_ = godotenv.Load()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log.Fatalf("loading config: %v", cfgErr)
	}
	l, logErr := logger.New(cfg.LogLevel)
	if logErr != nil {
		log.Fatalf("building logger: %v", logErr)
	}

	if runErr := app.Run(cfg, l); runErr != nil {
		l.WithError(runErr).Fatal("service terminated")
	}
}
