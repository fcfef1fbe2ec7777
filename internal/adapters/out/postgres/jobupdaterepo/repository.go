package jobupdaterepo

import (
	"context"

	"fieldops/internal/core/domain/model/jobupdate"

	"gorm.io/gorm"
)

// GormJobUpdateRepository implements ports.JobUpdateRepository using GORM.
// Reads of the log go through the queries package.
type GormJobUpdateRepository struct {
	db *gorm.DB
}

func NewGormJobUpdateRepository(db *gorm.DB) *GormJobUpdateRepository {
	return &GormJobUpdateRepository{db: db}
}

// Add inserts an entry.
func (r *GormJobUpdateRepository) Add(ctx context.Context, entry *jobupdate.JobUpdate) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
