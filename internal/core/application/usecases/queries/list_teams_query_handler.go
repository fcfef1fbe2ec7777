package queries

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTeamsQueryHandler struct {
	db     *gorm.DB
	access services.AccessResolver
}

func NewListTeamsQueryHandler(db *gorm.DB) ListTeamsQueryHandler {
	return ListTeamsQueryHandler{db: db, access: services.NewAccessResolver()}
}

// Handle returns teams newest first.
func (h ListTeamsQueryHandler) Handle(ctx context.Context, query ListTeamsQuery) ([]TeamView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.access.RequireAdmin(query.Actor()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.name,
			t.created_at,
			u.id,
			u.name,
			u.email
		FROM teams t
		LEFT JOIN users u ON u.id = t.installer_user_id
		ORDER BY t.created_at DESC, t.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]TeamView, 0)
	for rows.Next() {
		var (
			team           TeamView
			id             uuid.UUID
			createdAt      time.Time
			installerID    *uuid.UUID
			installerName  *string
			installerEmail *string
		)
		if err = rows.Scan(
			&id,
			&team.Name,
			&createdAt,
			&installerID,
			&installerName,
			&installerEmail,
		); err != nil {
			return nil, err
		}

		if team.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		team.CreatedAt = createdAt.UTC()

		if installerID != nil && installerName != nil {
			installer := InstallerView{Name: *installerName, Email: installerEmail}
			if installer.ID, err = kernel.UUIDFromBytes(installerID[:]); err != nil {
				return nil, err
			}
			team.Installer = &installer
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}
