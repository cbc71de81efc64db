package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	LoanID string  `json:"loanId" validate:"required,hex32"`
	Date   string  `json:"date" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Notes  string  `json:"notes"`
}

func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Create(c.Request().Context(), payment.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) Update(c echo.Context) error {
	var req payment.UpdateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentHandler) ListByLoan(c echo.Context) error {
	ps, err := h.uc.ListByLoan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}
