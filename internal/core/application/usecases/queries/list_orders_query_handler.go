package queries

import (
	"context"
	"strings"

	"fieldops/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists order views newest first.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	access services.AccessResolver
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, access: services.NewAccessResolver()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := h.access.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if status := query.Status(); status != nil {
		where = append(where, "o.status = ?")
		args = append(args, int(*status))
	}
	if teamID := query.TeamID(); teamID != nil {
		where = append(where, "o.assigned_team_id = ?")
		args = append(args, teamID.Bytes())
	}
	if !actor.IsAdmin() {
		if teamID := actor.TeamID(); teamID != nil {
			where = append(where, "(o.assigned_user_id = ? OR o.assigned_team_id = ?)")
			args = append(args, actor.UserID().Bytes(), teamID.Bytes())
		} else {
			where = append(where, "o.assigned_user_id = ?")
			args = append(args, actor.UserID().Bytes())
		}
	}

	sql := orderViewSelect
	if len(where) > 0 {
		sql += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\tORDER BY o.created_at DESC, o.id"

	var rows []orderViewRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
