package initializers

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	log "github.com/sirupsen/logrus"

	"github.com/PrayerWall/migrations"
	"github.com/PrayerWall/services"
	"github.com/PrayerWall/storage"
)

// InitStorage picks the backend for the life of the process: Postgres when a
// database URL is configured, memory otherwise. The chosen store is seeded
// with the default daily inspirations.
func InitStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Using %s storage", store.Kind())

	if _, err := services.SeedDailyInspirations(ctx, store); err != nil {
		log.Warnf("Could not auto-seed daily inspirations: %v", err)
	}
	return store, nil
}

func openStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	if cfg.DatabaseURL == "" {
		return storage.NewMemStorage(), nil
	}

	db, err := ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return storage.NewSQLStorage(goqu.New("postgres", db)), nil
}
