// Package http is the echo adapter: request decoding, validation, and the
// mapping from domain errors to HTTP statuses. No business logic lives here.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/config"
)

type Handler struct{ settings config.Settings }

func NewHandler(settings config.Settings) *Handler { return &Handler{settings: settings} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Settings surfaces the app defaults clients use to pre-fill loan forms.
func (h *Handler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings)
}
