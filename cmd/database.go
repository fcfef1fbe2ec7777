package cmd

import (
	"context"
	"fmt"
	"time"

	"fieldops/internal/adapters/out/postgres"

	"github.com/rs/zerolog"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to postgres, checks the connection and, when
// DBAutoMigrate is set, migrates the schema.
func OpenDatabase(ctx context.Context, cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err = postgres.Migrate(ctx, db); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("database schema migrated")
	}

	return db, nil
}
