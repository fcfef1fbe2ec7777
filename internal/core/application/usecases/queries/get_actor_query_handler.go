package queries

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActorQueryHandler struct {
	db *gorm.DB
}

func NewGetActorQueryHandler(db *gorm.DB) GetActorQueryHandler {
	return GetActorQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the user no longer exists, which
// the session layer treats as an unauthenticated request.
func (h GetActorQueryHandler) Handle(ctx context.Context, query GetActorQuery) (ActorView, error) {
	if err := query.Validate(); err != nil {
		return ActorView{}, err
	}

	var row struct {
		ID       uuid.UUID
		Name     string
		Email    *string
		Role     string
		TeamID   *uuid.UUID
		TeamName *string
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.name,
			u.email,
			u.role,
			u.team_id,
			t.name AS team_name
		FROM users u
		LEFT JOIN teams t ON t.id = u.team_id
		WHERE u.id = ?
	`, query.UserID().Bytes()).Scan(&row)
	if result.Error != nil {
		return ActorView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ActorView{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	role := user.Role(row.Role)
	if err := role.Validate(); err != nil {
		return ActorView{}, err
	}
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ActorView{}, err
	}
	teamID, err := optionalUUID(row.TeamID)
	if err != nil {
		return ActorView{}, err
	}

	return ActorView{
		ID:       id,
		Name:     row.Name,
		Email:    row.Email,
		Role:     role,
		TeamID:   teamID,
		TeamName: row.TeamName,
	}, nil
}
