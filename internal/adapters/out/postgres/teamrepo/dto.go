// Package teamrepo maps team aggregates to the teams table.
package teamrepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/team"

	"github.com/google/uuid"
)

// TeamDTO is the teams table row. The unique index on installer_user_id
// keeps one installer from leading two teams.
type TeamDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:text;not null"`
	InstallerUserID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt       time.Time  `gorm:"not null;index;autoCreateTime:false"`
}

func (TeamDTO) TableName() string {
	return "teams"
}

func fromDomain(t *team.Team) TeamDTO {
	dto := TeamDTO{
		ID:        t.ID().Bytes(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt(),
	}
	if id := t.InstallerUserID(); id != nil {
		raw := id.Bytes()
		dto.InstallerUserID = &raw
	}
	return dto
}

func toDomain(dto TeamDTO) (*team.Team, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var installerID *kernel.UUID
	if dto.InstallerUserID != nil {
		parsed, parseErr := kernel.UUIDFromBytes(dto.InstallerUserID[:])
		if parseErr != nil {
			return nil, parseErr
		}
		installerID = &parsed
	}

	return team.RestoreTeam(id, dto.Name, installerID, dto.CreatedAt)
}
