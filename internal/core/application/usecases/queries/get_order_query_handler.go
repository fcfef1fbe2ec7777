package queries

import (
	"context"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads one order view. Anonymous actors are rejected
// before the lookup; a missing order is reported before access is checked.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	access services.AccessResolver
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, access: services.NewAccessResolver()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}
	if err := h.access.RequireAuthenticated(query.Actor()); err != nil {
		return OrderView{}, err
	}

	var row orderViewRow
	result := h.db.WithContext(ctx).
		Raw(orderViewSelect+` WHERE o.id = ?`, query.OrderID().Bytes()).
		Scan(&row)
	if result.Error != nil {
		return OrderView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	view, err := row.toView()
	if err != nil {
		return OrderView{}, err
	}

	if err = h.access.AuthorizeAssignee(
		query.Actor(), view.ID, view.AssignedUserID, view.AssignedTeamID, services.ActionRead,
	); err != nil {
		return OrderView{}, err
	}
	return view, nil
}
