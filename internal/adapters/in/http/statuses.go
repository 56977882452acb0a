package http

import (
	"net/http"

	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/application/usecases/queries"
	"orderintegrity/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetStateStatuses handles GET /api/v1/states/:state/statuses.
func (s *Server) GetStateStatuses(ctx echo.Context) error {
	query, err := queries.NewGetStateStatusesQuery(order.State(ctx.Param("state")))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	statuses, err := s.getStateStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to retrieve statuses")
	}

	response := make([]StateStatus, len(statuses))
	for i, st := range statuses {
		response[i] = StateStatus{
			Status:    st.Status.String(),
			Label:     st.Label,
			IsDefault: st.IsDefault,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignStatus handles POST /api/v1/states/:state/statuses.
func (s *Server) AssignStatus(ctx echo.Context) error {
	var req AssignStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignStatusCommand(
		order.Status(req.Status),
		order.State(ctx.Param("state")),
		req.IsDefault,
		req.Label,
	)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if err := s.assignStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err, "Failed to assign status")
	}

	return ctx.NoContent(http.StatusCreated)
}

// UnassignStatus handles DELETE /api/v1/states/:state/statuses/:status.
func (s *Server) UnassignStatus(ctx echo.Context) error {
	cmd, err := commands.NewUnassignStatusCommand(
		order.Status(ctx.Param("status")),
		order.State(ctx.Param("state")),
	)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if err := s.unassignStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err, "Failed to unassign status")
	}

	return ctx.NoContent(http.StatusNoContent)
}
