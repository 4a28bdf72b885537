package app

import (
	"context"

	"booking-service/internal/config"
	"booking-service/internal/db"
	"booking-service/internal/logger"
)

type Infra struct {
	DB *db.DB
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	database, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := db.RunBookingMigration(ctx, database.DB); err != nil {
		database.Close()
		return nil, err
	}

	logger.Info("database ready", nil)

	return &Infra{
		DB: database,
	}, nil
}
