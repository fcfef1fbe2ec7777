package teamrepo

import (
	"context"
	"errors"

	"fieldops/internal/adapters/out/postgres/pgerrors"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTeamRepository implements ports.TeamRepository using GORM.
type GormTeamRepository struct {
	db *gorm.DB
}

func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// Add saves a new team.
func (r *GormTeamRepository) Add(ctx context.Context, aggregate *team.Team) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.AsConflict(err, "team", "team or installer already exists")
	}
	return nil
}

// Update writes the name and installer link of an existing team.
func (r *GormTeamRepository) Update(ctx context.Context, aggregate *team.Team) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TeamDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "installer_user_id").
		Updates(&dto)
	if result.Error != nil {
		return pgerrors.AsConflict(result.Error, "team", "installer already leads another team")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("team", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a team by ID.
func (r *GormTeamRepository) Get(ctx context.Context, id kernel.UUID) (*team.Team, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a team with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released immediately.
func (r *GormTeamRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*team.Team, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormTeamRepository) get(db *gorm.DB, id kernel.UUID) (*team.Team, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TeamDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("team", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
