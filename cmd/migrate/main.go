package main

import (
	"context"
	"os"

	"github.com/HamzaHajMtir1/Elite-Shop/config"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/database"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/logger"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()

	opts := migrate.DefaultMigrateOptions()

	if err := migrate.MigrateStoreDB(ctx, db, log, opts); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration completed successfully")
}
