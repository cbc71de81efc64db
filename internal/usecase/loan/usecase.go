package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/domain/uow"
	"github.com/Danielteini939/Emprest/internal/engine"
	"github.com/Danielteini939/Emprest/pkg/dates"
	"github.com/Danielteini939/Emprest/pkg/id"
)

type Usecase struct {
	borrowers lending.BorrowerRepository
	loans     lending.LoanRepository
	payments  lending.PaymentRepository
	uow       uow.UnitOfWork
	now       func() time.Time
}

func NewUsecase(borrowers lending.BorrowerRepository, loans lending.LoanRepository, payments lending.PaymentRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{borrowers: borrowers, loans: loans, payments: payments, uow: tx, now: time.Now}
}

// SetClock overrides the usecase clock; tests pin "today" with it.
func (u *Usecase) SetClock(now func() time.Time) { u.now = now }

type ScheduleInput struct {
	Frequency       lending.Frequency `json:"frequency"`
	NextPaymentDate string            `json:"nextPaymentDate"`
	Installments    int               `json:"installments"`
}

type CreateInput struct {
	BorrowerID   string         `json:"borrowerId"`
	Principal    float64        `json:"principal"`
	InterestRate float64        `json:"interestRate"`
	IssueDate    string         `json:"issueDate"`
	DueDate      string         `json:"dueDate"`
	Schedule     *ScheduleInput `json:"paymentSchedule"`
	Notes        string         `json:"notes"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*lending.Loan, error) {
	if in.Principal <= 0 {
		return nil, fmt.Errorf("%w: principal must be positive", lending.ErrInvalidInput)
	}
	if in.InterestRate < 0 {
		return nil, fmt.Errorf("%w: interest rate must not be negative", lending.ErrInvalidInput)
	}
	issue, ok := dates.ParseFlexible(in.IssueDate)
	if !ok {
		return nil, fmt.Errorf("%w: issueDate %q", lending.ErrBadDate, in.IssueDate)
	}
	if _, ok := dates.ParseFlexible(in.DueDate); !ok {
		return nil, fmt.Errorf("%w: dueDate %q", lending.ErrBadDate, in.DueDate)
	}

	b, err := u.borrowers.GetByID(ctx, in.BorrowerID)
	if err != nil {
		return nil, lending.ErrBorrowerNotFound
	}

	l := &lending.Loan{
		LoanID:       id.New(),
		BorrowerID:   b.ID,
		BorrowerName: b.Name,
		Principal:    in.Principal,
		InterestRate: in.InterestRate,
		IssueDate:    dates.Format(issue),
		DueDate:      in.DueDate,
		Notes:        in.Notes,
	}
	if in.Schedule != nil {
		sched, err := buildSchedule(*in.Schedule, issue, in.Principal, in.InterestRate)
		if err != nil {
			return nil, err
		}
		l.PaymentSchedule = sched
	}
	l.Status = engine.DeriveStatus(l, nil, u.now())

	if err := u.loans.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}
	return l, nil
}

// buildSchedule normalizes a schedule input: a missing next payment date is
// derived from the issue date plus one period, and the installment amount
// is fixed here, at creation/edit time.
func buildSchedule(in ScheduleInput, issue time.Time, principal, rate float64) (*lending.PaymentSchedule, error) {
	if in.Installments <= 0 {
		return nil, fmt.Errorf("%w: installments must be positive", lending.ErrInvalidInput)
	}
	next := in.NextPaymentDate
	if next == "" {
		next = dates.Format(dates.AddPeriod(issue, string(in.Frequency)))
	} else if _, ok := dates.ParseFlexible(next); !ok {
		return nil, fmt.Errorf("%w: nextPaymentDate %q", lending.ErrBadDate, next)
	}
	return &lending.PaymentSchedule{
		Frequency:         in.Frequency,
		NextPaymentDate:   next,
		Installments:      in.Installments,
		InstallmentAmount: engine.InstallmentAmount(principal, rate, in.Installments),
	}, nil
}

// UpdateInput carries a partial update; nil fields stay untouched. Setting
// ClearSchedule removes the payment schedule.
type UpdateInput struct {
	BorrowerID    *string        `json:"borrowerId"`
	Principal     *float64       `json:"principal"`
	InterestRate  *float64       `json:"interestRate"`
	IssueDate     *string        `json:"issueDate"`
	DueDate       *string        `json:"dueDate"`
	Schedule      *ScheduleInput `json:"paymentSchedule"`
	ClearSchedule bool           `json:"clearSchedule"`
	Notes         *string        `json:"notes"`
}

func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateInput) (*lending.Loan, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, lending.ErrLoanNotFound
	}

	if in.BorrowerID != nil && *in.BorrowerID != l.BorrowerID {
		// Keep the denormalized name in sync whenever the reference moves.
		b, err := u.borrowers.GetByID(ctx, *in.BorrowerID)
		if err != nil {
			return nil, lending.ErrBorrowerNotFound
		}
		l.BorrowerID = b.ID
		l.BorrowerName = b.Name
	}
	termsChanged := false
	if in.Principal != nil {
		if *in.Principal <= 0 {
			return nil, fmt.Errorf("%w: principal must be positive", lending.ErrInvalidInput)
		}
		l.Principal = *in.Principal
		termsChanged = true
	}
	if in.InterestRate != nil {
		if *in.InterestRate < 0 {
			return nil, fmt.Errorf("%w: interest rate must not be negative", lending.ErrInvalidInput)
		}
		l.InterestRate = *in.InterestRate
		termsChanged = true
	}
	if in.IssueDate != nil {
		if _, ok := dates.ParseFlexible(*in.IssueDate); !ok {
			return nil, fmt.Errorf("%w: issueDate %q", lending.ErrBadDate, *in.IssueDate)
		}
		l.IssueDate = *in.IssueDate
	}
	if in.DueDate != nil {
		if _, ok := dates.ParseFlexible(*in.DueDate); !ok {
			return nil, fmt.Errorf("%w: dueDate %q", lending.ErrBadDate, *in.DueDate)
		}
		l.DueDate = *in.DueDate
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}

	switch {
	case in.ClearSchedule:
		l.PaymentSchedule = nil
	case in.Schedule != nil:
		issue, _ := dates.ParseFlexible(l.IssueDate)
		sched, err := buildSchedule(*in.Schedule, issue, l.Principal, l.InterestRate)
		if err != nil {
			return nil, err
		}
		l.PaymentSchedule = sched
	case termsChanged && l.PaymentSchedule != nil:
		// Terms moved under an existing schedule: re-fix the planned amount.
		l.PaymentSchedule.InstallmentAmount = engine.InstallmentAmount(l.Principal, l.InterestRate, l.PaymentSchedule.Installments)
	}

	payments, err := u.payments.ListByLoanID(ctx, l.LoanID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	l.Status = engine.DeriveStatus(l, payments, u.now())

	if err := u.loans.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("save loan: %w", err)
	}
	return l, nil
}

// Delete removes a loan and cascades over its payments in one transaction.
func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Loans.GetByLoanID(ctx, loanID); err != nil {
			return lending.ErrLoanNotFound
		}
		if err := r.Payments.DeleteByLoanID(ctx, loanID); err != nil {
			return fmt.Errorf("cascade payments: %w", err)
		}
		return r.Loans.Delete(ctx, loanID)
	})
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*lending.Loan, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, lending.ErrLoanNotFound
	}
	return l, nil
}

func (u *Usecase) List(ctx context.Context) ([]lending.Loan, error) {
	return u.loans.List(ctx)
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]lending.Loan, error) {
	return u.loans.ListByBorrowerID(ctx, borrowerID)
}

// Metrics returns the display summary for one loan.
func (u *Usecase) Metrics(ctx context.Context, loanID string) (engine.LoanMetrics, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return engine.LoanMetrics{}, lending.ErrLoanNotFound
	}
	payments, err := u.payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return engine.LoanMetrics{}, fmt.Errorf("list payments: %w", err)
	}
	return engine.MetricsForLoan(l, payments), nil
}

// RefreshStatuses re-derives every loan's status against the current clock
// and persists the ones that changed. Returns how many loans moved.
func (u *Usecase) RefreshStatuses(ctx context.Context) (int, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return 0, err
	}
	today := u.now()
	changed := 0
	for i := range loans {
		l := &loans[i]
		payments, err := u.payments.ListByLoanID(ctx, l.LoanID)
		if err != nil {
			return changed, fmt.Errorf("list payments for %s: %w", l.LoanID, err)
		}
		if next := engine.DeriveStatus(l, payments, today); next != l.Status {
			l.Status = next
			if err := u.loans.Save(ctx, l); err != nil {
				return changed, fmt.Errorf("save loan %s: %w", l.LoanID, err)
			}
			changed++
		}
	}
	return changed, nil
}
