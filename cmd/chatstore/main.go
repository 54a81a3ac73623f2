package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ferroxide/chatstore/config"
	"github.com/ferroxide/chatstore/internal/logger"
	"github.com/ferroxide/chatstore/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to config file (TOML); empty uses defaults and CHATSTORE_* env")
	flag.Parse()

	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(&cfg.Logging)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Close()

	db, err := storage.Open(&cfg.Database)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}

	if err := storage.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate schema", zap.Error(err))
	}

	zlog.Info("schema ready",
		zap.String("driver", cfg.Database.Driver),
	)
}
