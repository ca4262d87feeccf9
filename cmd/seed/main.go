package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petcare-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/petcare-manager/internal/db"
	"github.com/BruksfildServices01/petcare-manager/internal/logger"
)

// Cria o catálogo inicial e o gerente geral (SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD).
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Seed(context.Background(), db, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	log.Info("seed completed", zap.String("admin", cfg.SeedAdminEmail))
}
