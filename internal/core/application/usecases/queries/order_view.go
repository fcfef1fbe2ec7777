// Package queries contains read operations. Handlers read straight from the
// database with SQL and return flat views; they never load aggregates.
package queries

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is an order as shown to its readers, with the assigned team and
// installer resolved to names.
type OrderView struct {
	ID               kernel.UUID
	ExternalRef      *string
	CustomerName     string
	SiteAddress      string
	Description      string
	Status           order.Status
	AssignedTeamID   *kernel.UUID
	AssignedTeamName *string
	AssignedUserID   *kernel.UUID
	AssignedUserName *string
	ScheduledDate    *kernel.Date
	EstimatedDays    *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const orderViewSelect = `
	SELECT
		o.id,
		o.external_ref,
		o.customer_name,
		o.site_address,
		o.description,
		o.status,
		o.assigned_team_id,
		t.name AS assigned_team_name,
		o.assigned_user_id,
		u.name AS assigned_user_name,
		o.scheduled_date,
		o.estimated_days,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN teams t ON t.id = o.assigned_team_id
	LEFT JOIN users u ON u.id = o.assigned_user_id`

type orderViewRow struct {
	ID               uuid.UUID
	ExternalRef      *string
	CustomerName     string
	SiteAddress      string
	Description      string
	Status           int
	AssignedTeamID   *uuid.UUID
	AssignedTeamName *string
	AssignedUserID   *uuid.UUID
	AssignedUserName *string
	ScheduledDate    *time.Time
	EstimatedDays    *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (r orderViewRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	teamID, err := optionalUUID(r.AssignedTeamID)
	if err != nil {
		return OrderView{}, err
	}
	userID, err := optionalUUID(r.AssignedUserID)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:               id,
		ExternalRef:      r.ExternalRef,
		CustomerName:     r.CustomerName,
		SiteAddress:      r.SiteAddress,
		Description:      r.Description,
		Status:           order.Status(r.Status),
		AssignedTeamID:   teamID,
		AssignedTeamName: r.AssignedTeamName,
		AssignedUserID:   userID,
		AssignedUserName: r.AssignedUserName,
		EstimatedDays:    r.EstimatedDays,
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
	if r.ScheduledDate != nil {
		date := kernel.DateFromTime(*r.ScheduledDate)
		view.ScheduledDate = &date
	}

	return view, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
