package http

import (
	"errors"
	"net/http"

	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/domain/services"
	"orderintegrity/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// handlerError maps a use case error to a response. Integrity violations carry the
// rejection message unchanged so the host can show it to the user.
func handlerError(ctx echo.Context, err error, fallback string) error {
	code, message := http.StatusInternalServerError, fallback

	switch {
	case errors.Is(err, services.ErrIntegrityViolation):
		code, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, commands.ErrCannotUnassignDefaultStatus),
		errors.Is(err, commands.ErrStatusIsInUse):
		code, message = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code, message = http.StatusBadRequest, err.Error()
	default:
		ctx.Logger().Errorf("%s: %v", fallback, err)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
