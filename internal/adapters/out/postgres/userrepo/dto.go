// Package userrepo maps users to the users table.
package userrepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users table row.
type UserDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:text;not null"`
	Email     *string    `gorm:"type:text"`
	Role      string     `gorm:"type:text;not null"`
	TeamID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID().Bytes(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
	if id := u.TeamID(); id != nil {
		raw := id.Bytes()
		dto.TeamID = &raw
	}
	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var teamID *kernel.UUID
	if dto.TeamID != nil {
		parsed, parseErr := kernel.UUIDFromBytes(dto.TeamID[:])
		if parseErr != nil {
			return nil, parseErr
		}
		teamID = &parsed
	}

	return user.RestoreUser(id, dto.Name, dto.Email, user.Role(dto.Role), teamID, dto.CreatedAt)
}
