package http

import (
	"errors"
	"net/http"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server translates HTTP requests into commands and queries. Mutations on an
// order answer with the order re-read through GetOrder, so the body always
// carries the resolved team and installer names.
type Server struct {
	useCases UseCases
	access   services.AccessResolver
}

func NewServer(useCases UseCases) *Server {
	return &Server{useCases: useCases, access: services.NewAccessResolver()}
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		actorFrom(c), kernel.NewUUID(), req.CustomerName, req.SiteAddress, req.Description, req.ExternalRef,
	)
	if err != nil {
		return err
	}
	o, err := s.useCases.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Inc()

	return s.respondWithOrder(c, http.StatusCreated, o.ID())
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// ListOrders handles GET /api/orders?status=&teamId=.
func (s *Server) ListOrders(c echo.Context) error {
	teamID, err := kernel.UUIDPtrFromString(c.QueryParam("teamId"))
	if err != nil {
		return err
	}
	status := c.QueryParam("status")

	query, err := queries.NewListOrdersQuery(actorFrom(c), &status, teamID)
	if err != nil {
		return err
	}
	views, err := s.useCases.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]orderResponse, len(views))
	for i, view := range views {
		response[i] = toOrderResponse(view)
	}
	return c.JSON(http.StatusOK, response)
}

// AssignOrder handles POST /api/orders/:id/assign.
func (s *Server) AssignOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	// Admin check precedes body validation.
	if err = s.access.RequireAdmin(actorFrom(c)); err != nil {
		return err
	}
	var req assignOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	teamID, err := kernel.UUIDFromString(req.TeamID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrderCommand(actorFrom(c), orderID, teamID, req.ScheduledDate, req.EstimatedDays)
	if err != nil {
		return err
	}
	o, err := s.useCases.AssignOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		var conflict *order.ScheduleConflictError
		if errors.As(err, &conflict) {
			metrics.AssignmentsTotal.WithLabelValues(metrics.AssignmentResultConflict).Inc()
		}
		return err
	}
	metrics.AssignmentsTotal.WithLabelValues(metrics.AssignmentResultAssigned).Inc()

	return s.respondWithOrder(c, http.StatusOK, o.ID())
}

// SetOrderStatus handles POST /api/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req setOrderStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderStatusCommand(actorFrom(c), orderID, req.Status, req.BlockedReason)
	if err != nil {
		return err
	}
	o, err := s.useCases.SetOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	metrics.StatusTransitionsTotal.WithLabelValues(o.Status().String()).Inc()
	if o.Status() == order.Blocked {
		metrics.JobUpdatesTotal.WithLabelValues("BLOCKER").Inc()
	}

	return s.respondWithOrder(c, http.StatusOK, o.ID())
}

// ListJobUpdates handles GET /api/orders/:id/updates.
func (s *Server) ListJobUpdates(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewListJobUpdatesQuery(actorFrom(c), orderID)
	if err != nil {
		return err
	}
	views, err := s.useCases.ListJobUpdates.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]jobUpdateResponse, len(views))
	for i, view := range views {
		response[i] = toJobUpdateResponse(view)
	}
	return c.JSON(http.StatusOK, response)
}

// AppendJobUpdate handles POST /api/orders/:id/updates.
func (s *Server) AppendJobUpdate(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req appendJobUpdateRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAppendJobUpdateCommand(actorFrom(c), orderID, req.Type, req.Message, req.Needs)
	if err != nil {
		return err
	}
	update, err := s.useCases.AppendJobUpdate.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	metrics.JobUpdatesTotal.WithLabelValues(update.Type().String()).Inc()

	response := jobUpdateResponseFromDomain(update)
	if session, ok := sessionFrom(c); ok {
		name := session.Name
		response.AuthorName = &name
	}
	return c.JSON(http.StatusCreated, response)
}

// ListTeams handles GET /api/teams.
func (s *Server) ListTeams(c echo.Context) error {
	views, err := s.useCases.ListTeams.Handle(c.Request().Context(), queries.NewListTeamsQuery(actorFrom(c)))
	if err != nil {
		return err
	}

	response := make([]teamResponse, len(views))
	for i, view := range views {
		response[i] = toTeamResponse(view)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateTeam handles POST /api/teams.
func (s *Server) CreateTeam(c echo.Context) error {
	var req createTeamRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTeamCommand(actorFrom(c), kernel.NewUUID(), req.Name)
	if err != nil {
		return err
	}
	t, err := s.useCases.CreateTeam.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, teamResponseFromDomain(t))
}

// CreateInstaller handles POST /api/users.
func (s *Server) CreateInstaller(c echo.Context) error {
	var req createInstallerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	teamID, err := kernel.UUIDFromString(req.TeamID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateInstallerCommand(actorFrom(c), kernel.NewUUID(), teamID, req.Name, req.Email)
	if err != nil {
		return err
	}
	u, err := s.useCases.CreateInstaller.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(u))
}

// Me handles GET /api/me.
func (s *Server) Me(c echo.Context) error {
	session, ok := sessionFrom(c)
	if !ok {
		return errUnauthenticated
	}
	return c.JSON(http.StatusOK, toActorResponse(session))
}

func (s *Server) respondWithOrder(c echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(actorFrom(c), orderID)
	if err != nil {
		return err
	}
	view, err := s.useCases.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toOrderResponse(view))
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}
