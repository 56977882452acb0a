package http

import (
	"context"
	"net/http"

	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	SaveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SaveOrderCommand) (commands.SaveOrderResult, error)
	}
	AssignStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AssignStatusCommand) error
	}
	UnassignStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UnassignStatusCommand) error
	}
	CheckOrderIntegrityHandler interface {
		Handle(ctx context.Context, query queries.CheckOrderIntegrityQuery) (queries.CheckOrderIntegrityQueryResponse, error)
	}
	GetInconsistentOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetInconsistentOrdersQuery) ([]queries.GetInconsistentOrdersQueryResponse, error)
	}
	GetStateStatusesHandler interface {
		Handle(ctx context.Context, query queries.GetStateStatusesQuery) ([]queries.GetStateStatusesQueryResponse, error)
	}
)

// Server handles HTTP requests and coordinates them with the application use cases.
type Server struct {
	// Command handlers
	saveOrderHandler      SaveOrderHandler
	assignStatusHandler   AssignStatusHandler
	unassignStatusHandler UnassignStatusHandler

	// Query handlers
	checkOrderIntegrityHandler   CheckOrderIntegrityHandler
	getInconsistentOrdersHandler GetInconsistentOrdersHandler
	getStateStatusesHandler      GetStateStatusesHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	saveOrderHandler SaveOrderHandler,
	assignStatusHandler AssignStatusHandler,
	unassignStatusHandler UnassignStatusHandler,
	checkOrderIntegrityHandler CheckOrderIntegrityHandler,
	getInconsistentOrdersHandler GetInconsistentOrdersHandler,
	getStateStatusesHandler GetStateStatusesHandler,
) *Server {
	return &Server{
		saveOrderHandler:             saveOrderHandler,
		assignStatusHandler:          assignStatusHandler,
		unassignStatusHandler:        unassignStatusHandler,
		checkOrderIntegrityHandler:   checkOrderIntegrityHandler,
		getInconsistentOrdersHandler: getInconsistentOrdersHandler,
		getStateStatusesHandler:      getStateStatusesHandler,
	}
}

// RegisterRoutes mounts the API, the health probe and the Prometheus endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	// the static segment must win over :id
	api.GET("/orders/inconsistent", s.GetInconsistentOrders)
	api.PUT("/orders/:id", s.SaveOrder)
	api.GET("/orders/:id/integrity", s.CheckOrderIntegrity)

	api.GET("/states/:state/statuses", s.GetStateStatuses)
	api.POST("/states/:state/statuses", s.AssignStatus)
	api.DELETE("/states/:state/statuses/:status", s.UnassignStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
