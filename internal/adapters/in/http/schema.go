package http

import (
	"time"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/model/user"
)

// --- Requests ---

type createOrderRequest struct {
	CustomerName string  `json:"customerName" validate:"required"`
	SiteAddress  string  `json:"siteAddress"  validate:"required"`
	Description  string  `json:"description"  validate:"required"`
	ExternalRef  *string `json:"externalRef"`
}

// assignOrderRequest leaves the date and estimatedDays to the scheduler, which
// checks them only after the team and order are found.
type assignOrderRequest struct {
	TeamID        string `json:"teamId"        validate:"required,uuid"`
	ScheduledDate string `json:"scheduledDate"`
	EstimatedDays int    `json:"estimatedDays"`
}

type setOrderStatusRequest struct {
	Status        string `json:"status"        validate:"required"`
	BlockedReason string `json:"blockedReason"`
}

type appendJobUpdateRequest struct {
	Type    string  `json:"type"    validate:"required"`
	Message string  `json:"message" validate:"required"`
	Needs   *string `json:"needs"`
}

type createTeamRequest struct {
	Name string `json:"name" validate:"required"`
}

type createInstallerRequest struct {
	TeamID string  `json:"teamId" validate:"required,uuid"`
	Name   string  `json:"name"   validate:"required"`
	Email  *string `json:"email"  validate:"omitempty,email"`
}

// --- Responses ---

type orderResponse struct {
	ID               string    `json:"id"`
	ExternalRef      *string   `json:"externalRef"`
	CustomerName     string    `json:"customerName"`
	SiteAddress      string    `json:"siteAddress"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	AssignedTeamID   *string   `json:"assignedTeamId"`
	AssignedTeamName *string   `json:"assignedTeamName"`
	AssignedUserID   *string   `json:"assignedUserId"`
	AssignedUserName *string   `json:"assignedUserName"`
	ScheduledDate    *string   `json:"scheduledDate"`
	EstimatedDays    *int      `json:"estimatedDays"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type jobUpdateResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	AuthorID   string    `json:"authorId"`
	AuthorName *string   `json:"authorName"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Needs      *string   `json:"needs"`
	CreatedAt  time.Time `json:"createdAt"`
}

type installerResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type teamResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Installer *installerResponse `json:"installer"`
	CreatedAt time.Time          `json:"createdAt"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"`
	TeamID    *string   `json:"teamId"`
	CreatedAt time.Time `json:"createdAt"`
}

type actorResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
	TeamID   *string `json:"teamId"`
	TeamName *string `json:"teamName"`
}

// conflictingOrderResponse identifies the booking that blocked an assignment.
type conflictingOrderResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	ScheduledDate string `json:"scheduledDate"`
	EstimatedDays int    `json:"estimatedDays"`
}

type errorResponse struct {
	Error            string                    `json:"error"`
	ConflictingOrder *conflictingOrderResponse `json:"conflictingOrder,omitempty"`
}

// --- Mapping ---

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toOrderResponse(v queries.OrderView) orderResponse {
	r := orderResponse{
		ID:               v.ID.String(),
		ExternalRef:      v.ExternalRef,
		CustomerName:     v.CustomerName,
		SiteAddress:      v.SiteAddress,
		Description:      v.Description,
		Status:           v.Status.String(),
		AssignedTeamID:   idString(v.AssignedTeamID),
		AssignedTeamName: v.AssignedTeamName,
		AssignedUserID:   idString(v.AssignedUserID),
		AssignedUserName: v.AssignedUserName,
		EstimatedDays:    v.EstimatedDays,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.ScheduledDate != nil {
		date := v.ScheduledDate.String()
		r.ScheduledDate = &date
	}
	return r
}

func toJobUpdateResponse(v queries.JobUpdateView) jobUpdateResponse {
	return jobUpdateResponse{
		ID:         v.ID.String(),
		OrderID:    v.OrderID.String(),
		AuthorID:   v.AuthorID.String(),
		AuthorName: v.AuthorName,
		Type:       v.Type.String(),
		Message:    v.Message,
		Needs:      v.Needs,
		CreatedAt:  v.CreatedAt,
	}
}

func jobUpdateResponseFromDomain(u *jobupdate.JobUpdate) jobUpdateResponse {
	return jobUpdateResponse{
		ID:        u.ID().String(),
		OrderID:   u.OrderID().String(),
		AuthorID:  u.AuthorID().String(),
		Type:      u.Type().String(),
		Message:   u.Message(),
		Needs:     u.Needs(),
		CreatedAt: u.CreatedAt(),
	}
}

func toTeamResponse(v queries.TeamView) teamResponse {
	r := teamResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
	}
	if v.Installer != nil {
		r.Installer = &installerResponse{
			ID:    v.Installer.ID.String(),
			Name:  v.Installer.Name,
			Email: v.Installer.Email,
		}
	}
	return r
}

// teamResponseFromDomain renders a team that was just created, so it has no
// installer yet.
func teamResponseFromDomain(t *team.Team) teamResponse {
	return teamResponse{
		ID:        t.ID().String(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt(),
	}
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		TeamID:    idString(u.TeamID()),
		CreatedAt: u.CreatedAt(),
	}
}

func toActorResponse(v queries.ActorView) actorResponse {
	return actorResponse{
		ID:       v.ID.String(),
		Name:     v.Name,
		Email:    v.Email,
		Role:     v.Role.String(),
		TeamID:   idString(v.TeamID),
		TeamName: v.TeamName,
	}
}
