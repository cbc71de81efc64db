package http

import "github.com/labstack/echo/v4"

// Handlers groups everything Register needs to lay out the API.
type Handlers struct {
	Base        *Handler
	Borrowers   *BorrowerHandler
	Loans       *LoanHandler
	Payments    *PaymentHandler
	Reports     *ReportHandler
	Interchange *InterchangeHandler
}

func Register(e *echo.Echo, h Handlers) {
	e.Validator = NewValidator()

	e.GET("/health", h.Base.Health)
	e.GET("/settings", h.Base.Settings)

	e.POST("/borrowers", h.Borrowers.Create)
	e.GET("/borrowers", h.Borrowers.List)
	e.GET("/borrowers/:id", h.Borrowers.Get)
	e.PATCH("/borrowers/:id", h.Borrowers.Update)
	e.DELETE("/borrowers/:id", h.Borrowers.Delete)

	e.POST("/loans", h.Loans.Create)
	e.GET("/loans", h.Loans.List)
	e.GET("/loans/:id", h.Loans.Get)
	e.PATCH("/loans/:id", h.Loans.Update)
	e.DELETE("/loans/:id", h.Loans.Delete)
	e.GET("/loans/:id/metrics", h.Loans.Metrics)
	e.GET("/loans/:id/payments", h.Payments.ListByLoan)

	e.POST("/payments", h.Payments.Create)
	e.PATCH("/payments/:id", h.Payments.Update)
	e.DELETE("/payments/:id", h.Payments.Delete)

	e.GET("/dashboard/metrics", h.Reports.Dashboard)
	e.GET("/dashboard/overdue", h.Reports.Overdue)
	e.GET("/dashboard/upcoming", h.Reports.Upcoming)

	e.GET("/export", h.Interchange.Export)
	e.POST("/import", h.Interchange.Import)

	e.POST("/admin/refresh-statuses", h.Loans.RefreshStatuses)
}
