package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/engine"
)

// Usecase loads a consistent ledger snapshot and hands it to the pure
// dashboard aggregator. All derivation stays in the engine.
type Usecase struct {
	borrowers lending.BorrowerRepository
	loans     lending.LoanRepository
	payments  lending.PaymentRepository
	now       func() time.Time
}

func NewUsecase(borrowers lending.BorrowerRepository, loans lending.LoanRepository, payments lending.PaymentRepository) *Usecase {
	return &Usecase{borrowers: borrowers, loans: loans, payments: payments, now: time.Now}
}

// SetClock overrides the usecase clock; tests pin "today" with it.
func (u *Usecase) SetClock(now func() time.Time) { u.now = now }

func (u *Usecase) Dashboard(ctx context.Context) (engine.DashboardMetrics, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return engine.DashboardMetrics{}, fmt.Errorf("list loans: %w", err)
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return engine.DashboardMetrics{}, fmt.Errorf("list payments: %w", err)
	}
	n, err := u.borrowers.Count(ctx)
	if err != nil {
		return engine.DashboardMetrics{}, fmt.Errorf("count borrowers: %w", err)
	}
	return engine.Metrics(loans, payments, int(n), u.now()), nil
}

func (u *Usecase) Overdue(ctx context.Context) ([]lending.Loan, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return engine.OverdueLoans(loans), nil
}

func (u *Usecase) Upcoming(ctx context.Context, days int) ([]lending.Loan, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return engine.UpcomingDueLoans(loans, days, u.now()), nil
}
