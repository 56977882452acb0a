package http

import (
	"errors"
	"net/http"
	"strconv"

	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/application/usecases/queries"
	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SaveOrder handles PUT /api/v1/orders/:id - writes an order snapshot through the save hook.
func (s *Server) SaveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req SaveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var refunded *kernel.Amount
	if req.TotalRefunded.Valid {
		amount := kernel.NewAmount(req.TotalRefunded.Decimal)
		refunded = &amount
	}

	cmd, err := commands.NewSaveOrderCommand(
		orderID,
		order.State(req.State),
		order.Status(req.Status),
		kernel.NewAmount(req.BaseGrandTotal),
		refunded,
		order.Capabilities(req.Capabilities),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.saveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// a missing default status is a registry problem, not a missing resource
		if errors.Is(err, errs.ErrObjectNotFound) {
			ctx.Logger().Errorf("Failed to save order %s: %v", orderID, err)
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to save order",
			})
		}
		return handlerError(ctx, err, "Failed to save order")
	}

	return ctx.JSON(http.StatusOK, SaveOrderResponse{
		ID:     orderID.String(),
		State:  result.State.String(),
		Status: result.Status.String(),
	})
}

// CheckOrderIntegrity handles GET /api/v1/orders/:id/integrity - dry-runs the save hook
// against the stored order.
func (s *Server) CheckOrderIntegrity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewCheckOrderIntegrityQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.checkOrderIntegrityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to check order integrity")
	}

	return ctx.JSON(http.StatusOK, IntegrityReport{
		ID:             report.OrderID.String(),
		CurrentState:   report.CurrentState.String(),
		CurrentStatus:  report.CurrentStatus.String(),
		ResolvedState:  report.ResolvedState.String(),
		ResolvedStatus: report.ResolvedStatus.String(),
		Transition:     report.Transition,
		Valid:          report.Valid,
		Violation:      report.Violation,
	})
}

// GetInconsistentOrders handles GET /api/v1/orders/inconsistent?limit=N.
func (s *Server) GetInconsistentOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = n
	}

	query, err := queries.NewGetInconsistentOrdersQuery(limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getInconsistentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to retrieve inconsistent orders")
	}

	response := make([]InconsistentOrder, len(orders))
	for i, o := range orders {
		response[i] = InconsistentOrder{
			ID:     o.ID.String(),
			State:  o.State.String(),
			Status: o.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
