package postgres

import (
	"context"

	"fieldops/internal/adapters/out/postgres/jobupdaterepo"
	"fieldops/internal/adapters/out/postgres/orderrepo"
	"fieldops/internal/adapters/out/postgres/teamrepo"
	"fieldops/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table of the store in creation order.
func Models() []any {
	return []any{
		&teamrepo.TeamDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&jobupdaterepo.JobUpdateDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

// TruncateAll empties every table. Used by integration tests between cases.
func TruncateAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec("TRUNCATE TABLE job_updates, orders, users, teams").Error
}
