package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, lending.ErrBorrowerNotFound),
		errors.Is(err, lending.ErrLoanNotFound),
		errors.Is(err, lending.ErrPaymentNotFound),
		errors.Is(err, lending.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, lending.ErrBorrowerHasLoans):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, lending.ErrInvalidInput),
		errors.Is(err, lending.ErrBadDate),
		errors.Is(err, lending.ErrFutureDate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// bindAndValidate decodes and validates the request body. On failure the
// error response is already written; the handler just returns err.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if bindErr := c.Bind(req); bindErr != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if vErr := c.Validate(req); vErr != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(vErr)})
	}
	return true, nil
}
