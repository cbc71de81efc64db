package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/usecase/report"
)

type ReportHandler struct {
	uc          *report.Usecase
	defaultDays int
}

func NewReportHandler(uc *report.Usecase, defaultDays int) *ReportHandler {
	return &ReportHandler{uc: uc, defaultDays: defaultDays}
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	m, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ReportHandler) Overdue(c echo.Context) error {
	ls, err := h.uc.Overdue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ls)
}

// Upcoming lists loans due within ?days= (config default when absent).
func (h *ReportHandler) Upcoming(c echo.Context) error {
	days := h.defaultDays
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be a positive integer"})
		}
		days = n
	}
	ls, err := h.uc.Upcoming(c.Request().Context(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ls)
}
