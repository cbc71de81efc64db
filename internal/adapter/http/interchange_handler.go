package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/usecase/interchange"
)

type InterchangeHandler struct{ uc *interchange.Usecase }

func NewInterchangeHandler(uc *interchange.Usecase) *InterchangeHandler {
	return &InterchangeHandler{uc: uc}
}

// Export returns the whole ledger; ?format=csv switches to the sectioned
// CSV layout, anything else is the JSON snapshot.
func (h *InterchangeHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()
	if c.QueryParam("format") == "csv" {
		out, err := h.uc.ExportCSV(ctx)
		if err != nil {
			return writeError(c, err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="emprest-export.csv"`)
		return c.Blob(http.StatusOK, "text/csv", []byte(out))
	}
	snap, err := h.uc.Export(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// Import replaces the ledger with the posted body (JSON snapshot or CSV).
func (h *InterchangeHandler) Import(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable body"})
	}
	res, err := h.uc.Import(c.Request().Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
