package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type scheduleReq struct {
	Frequency       string `json:"frequency" validate:"required,freq"`
	NextPaymentDate string `json:"nextPaymentDate" validate:"omitempty,isodate"`
	Installments    int    `json:"installments" validate:"required,gt=0"`
}

type createLoanReq struct {
	BorrowerID   string       `json:"borrowerId" validate:"required,hex32"`
	Principal    float64      `json:"principal" validate:"required,gt=0,dec2"`
	InterestRate float64      `json:"interestRate" validate:"gte=0"`
	IssueDate    string       `json:"issueDate" validate:"required"`
	DueDate      string       `json:"dueDate" validate:"required"`
	Schedule     *scheduleReq `json:"paymentSchedule"`
	Notes        string       `json:"notes"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	in := loan.CreateInput{
		BorrowerID:   req.BorrowerID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		IssueDate:    req.IssueDate,
		DueDate:      req.DueDate,
		Notes:        req.Notes,
	}
	if req.Schedule != nil {
		in.Schedule = &loan.ScheduleInput{
			Frequency:       lending.Frequency(req.Schedule.Frequency),
			NextPaymentDate: req.Schedule.NextPaymentDate,
			Installments:    req.Schedule.Installments,
		}
	}
	l, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) Get(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

// List returns the whole book, or one borrower's slice of it with
// ?borrowerId=.
func (h *LoanHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if borrowerID := c.QueryParam("borrowerId"); borrowerID != "" {
		ls, err := h.uc.ListByBorrower(ctx, borrowerID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, ls)
	}
	ls, err := h.uc.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ls)
}

func (h *LoanHandler) Update(c echo.Context) error {
	var req loan.UpdateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	l, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) Metrics(c echo.Context) error {
	m, err := h.uc.Metrics(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// RefreshStatuses sweeps the whole book against today's date.
func (h *LoanHandler) RefreshStatuses(c echo.Context) error {
	changed, err := h.uc.RefreshStatuses(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"changed": changed})
}
