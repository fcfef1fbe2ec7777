// Package postgres provides the GORM implementation of the Unit of Work
// pattern and the schema of the field operations store.
//
// Every repository obtained from a GormUnitOfWork after Begin runs inside the
// same transaction, so a handler can lock a team, read its bookings and write
// an order atomically:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	t, err := uow.TeamRepository().GetForUpdate(ctx, teamID)
//	if err != nil {
//	    return err
//	}
//	// ... read bookings, update the order
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction; concurrent requests
// must use separate instances.
package postgres

import (
	"context"

	"fieldops/internal/adapters/out/postgres/jobupdaterepo"
	"fieldops/internal/adapters/out/postgres/orderrepo"
	"fieldops/internal/adapters/out/postgres/teamrepo"
	"fieldops/internal/adapters/out/postgres/userrepo"
	"fieldops/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// none is active, which is what a deferred Rollback after Commit sees.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the active
// transaction, or to the pool when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// TeamRepository returns a team repository bound to the active transaction.
func (uow *GormUnitOfWork) TeamRepository() ports.TeamRepository {
	return teamrepo.NewGormTeamRepository(uow.conn())
}

// UserRepository returns a user repository bound to the active transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// JobUpdateRepository returns the update log bound to the active transaction.
func (uow *GormUnitOfWork) JobUpdateRepository() ports.JobUpdateRepository {
	return jobupdaterepo.NewGormJobUpdateRepository(uow.conn())
}
