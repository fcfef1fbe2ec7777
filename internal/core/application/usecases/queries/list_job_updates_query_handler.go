package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListJobUpdatesQueryHandler lists an order's updates newest first, ties
// broken by id descending so pages are stable.
type ListJobUpdatesQueryHandler struct {
	db     *gorm.DB
	access services.AccessResolver
}

func NewListJobUpdatesQueryHandler(db *gorm.DB) ListJobUpdatesQueryHandler {
	return ListJobUpdatesQueryHandler{db: db, access: services.NewAccessResolver()}
}

func (h ListJobUpdatesQueryHandler) Handle(ctx context.Context, query ListJobUpdatesQuery) ([]JobUpdateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.access.RequireAuthenticated(query.Actor()); err != nil {
		return nil, err
	}

	teamID, userID, err := loadOrderAssignee(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.access.AuthorizeAssignee(
		query.Actor(), query.OrderID(), userID, teamID, services.ActionRead,
	); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.order_id,
			j.author_id,
			u.name,
			j.type,
			j.message,
			j.needs,
			j.created_at
		FROM job_updates j
		LEFT JOIN users u ON u.id = j.author_id
		WHERE j.order_id = ?
		ORDER BY j.created_at DESC, j.id DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]JobUpdateView, 0)
	for rows.Next() {
		var (
			view                  JobUpdateView
			id, orderID, authorID uuid.UUID
			updateType            string
			createdAt             time.Time
		)
		if err = rows.Scan(
			&id,
			&orderID,
			&authorID,
			&view.AuthorName,
			&updateType,
			&view.Message,
			&view.Needs,
			&createdAt,
		); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return nil, err
		}
		if view.Type, err = jobupdate.ParseType(updateType); err != nil {
			return nil, err
		}
		view.CreatedAt = createdAt.UTC()
		updates = append(updates, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return updates, nil
}

// loadOrderAssignee reads just the assignment columns needed to authorize
// access to an order's children.
func loadOrderAssignee(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (*kernel.UUID, *kernel.UUID, error) {
	var row struct {
		AssignedTeamID *uuid.UUID
		AssignedUserID *uuid.UUID
	}
	err := db.WithContext(ctx).
		Raw(`SELECT assigned_team_id, assigned_user_id FROM orders WHERE id = ?`, orderID.Bytes()).
		Row().
		Scan(&row.AssignedTeamID, &row.AssignedUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return nil, nil, err
	}

	teamID, err := optionalUUID(row.AssignedTeamID)
	if err != nil {
		return nil, nil, err
	}
	userID, err := optionalUUID(row.AssignedUserID)
	if err != nil {
		return nil, nil, err
	}
	return teamID, userID, nil
}
