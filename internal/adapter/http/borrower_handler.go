package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *BorrowerHandler) Create(c echo.Context) error {
	var req createBorrowerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	b, err := h.uc.Create(c.Request().Context(), borrower.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BorrowerHandler) Get(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BorrowerHandler) List(c echo.Context) error {
	bs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bs)
}

func (h *BorrowerHandler) Update(c echo.Context) error {
	var req borrower.UpdateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	b, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BorrowerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
