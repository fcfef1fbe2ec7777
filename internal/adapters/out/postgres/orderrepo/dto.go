// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table row. The (assigned_team_id, status) index
// serves the team calendar lookup of the assignment transaction.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ExternalRef    *string    `gorm:"type:text"`
	CustomerName   string     `gorm:"type:text;not null"`
	SiteAddress    string     `gorm:"type:text;not null"`
	Description    string     `gorm:"type:text;not null"`
	Status         int        `gorm:"not null;index:idx_orders_team_status,priority:2"`
	AssignedTeamID *uuid.UUID `gorm:"type:uuid;index:idx_orders_team_status,priority:1"`
	AssignedUserID *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledDate  *time.Time `gorm:"type:date"`
	EstimatedDays  *int
	CreatedAt      time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:             o.ID().Bytes(),
		ExternalRef:    o.ExternalRef(),
		CustomerName:   o.CustomerName(),
		SiteAddress:    o.SiteAddress(),
		Description:    o.Description(),
		Status:         int(o.Status()),
		AssignedTeamID: uuidPtr(o.AssignedTeamID()),
		AssignedUserID: uuidPtr(o.AssignedUserID()),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}

	if s := o.Schedule(); s != nil {
		date := s.Start().Time()
		days := s.EstimatedDays()
		dto.ScheduledDate = &date
		dto.EstimatedDays = &days
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	teamID, err := kernelUUIDPtr(dto.AssignedTeamID)
	if err != nil {
		return nil, err
	}

	userID, err := kernelUUIDPtr(dto.AssignedUserID)
	if err != nil {
		return nil, err
	}

	var schedule *order.Schedule
	if dto.ScheduledDate != nil && dto.EstimatedDays != nil {
		s, scheduleErr := order.RestoreSchedule(kernel.DateFromTime(*dto.ScheduledDate), *dto.EstimatedDays)
		if scheduleErr != nil {
			return nil, scheduleErr
		}
		schedule = &s
	}

	return order.RestoreOrder(
		id,
		dto.ExternalRef,
		dto.CustomerName,
		dto.SiteAddress,
		dto.Description,
		order.Status(dto.Status),
		teamID,
		userID,
		schedule,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
