package payment

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
	loans    lending.LoanRepository
	payments lending.PaymentRepository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(loans lending.LoanRepository, payments lending.PaymentRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx, now: time.Now}
}

// SetClock overrides the usecase clock; tests pin "today" with it.
func (u *Usecase) SetClock(now func() time.Time) { u.now = now }

type CreateInput struct {
	LoanID string  `json:"loanId"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// Create records a payment: the principal/interest split is computed from
// the loan's original terms and stored on the payment, and the loan status
// is re-derived in the same transaction.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*lending.Payment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", lending.ErrInvalidInput)
	}
	when, err := u.checkDate(in.Date)
	if err != nil {
		return nil, err
	}

	var created *lending.Payment
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, in.LoanID)
		if err != nil {
			return lending.ErrLoanNotFound
		}
		dist := engine.PaymentDistribution(l, in.Amount)
		p := &lending.Payment{
			PaymentID: id.New(),
			LoanID:    l.LoanID,
			Date:      dates.Format(when),
			Amount:    in.Amount,
			Principal: dist.Principal,
			Interest:  dist.Interest,
			Notes:     in.Notes,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		created = p
		return u.rederiveStatus(ctx, r, l)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateInput carries a partial update; nil fields stay untouched.
type UpdateInput struct {
	Date   *string  `json:"date"`
	Amount *float64 `json:"amount"`
	Notes  *string  `json:"notes"`
}

func (u *Usecase) Update(ctx context.Context, paymentID string, in UpdateInput) (*lending.Payment, error) {
	var updated *lending.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return lending.ErrPaymentNotFound
		}
		l, err := r.Loans.GetByLoanID(ctx, p.LoanID)
		if err != nil {
			return lending.ErrLoanNotFound
		}
		if in.Date != nil {
			when, err := u.checkDate(*in.Date)
			if err != nil {
				return err
			}
			p.Date = dates.Format(when)
		}
		if in.Amount != nil {
			if *in.Amount <= 0 {
				return fmt.Errorf("%w: amount must be positive", lending.ErrInvalidInput)
			}
			p.Amount = *in.Amount
			dist := engine.PaymentDistribution(l, p.Amount)
			p.Principal = dist.Principal
			p.Interest = dist.Interest
		}
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		if err := r.Payments.Save(ctx, p); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		updated = p
		return u.rederiveStatus(ctx, r, l)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a payment and re-derives the loan status; a loan can move
// back out of "paid" here.
func (u *Usecase) Delete(ctx context.Context, paymentID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return lending.ErrPaymentNotFound
		}
		if err := r.Payments.Delete(ctx, paymentID); err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		l, err := r.Loans.GetByLoanID(ctx, p.LoanID)
		if err != nil {
			// Payment referenced a vanished loan; nothing left to update.
			return nil
		}
		return u.rederiveStatus(ctx, r, l)
	})
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]lending.Payment, error) {
	if _, err := u.loans.GetByLoanID(ctx, loanID); err != nil {
		return nil, lending.ErrLoanNotFound
	}
	return u.payments.ListByLoanID(ctx, loanID)
}

// checkDate enforces the entry rule: the date must parse and must not be in
// the future at day granularity.
func (u *Usecase) checkDate(raw string) (time.Time, error) {
	when, ok := dates.ParseFlexible(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date %q", lending.ErrBadDate, raw)
	}
	if dates.Normalize(when).After(dates.Normalize(u.now())) {
		return time.Time{}, lending.ErrFutureDate
	}
	return when, nil
}

func (u *Usecase) rederiveStatus(ctx context.Context, r uow.Repos, l *lending.Loan) error {
	payments, err := r.Payments.ListByLoanID(ctx, l.LoanID)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	if next := engine.DeriveStatus(l, payments, u.now()); next != l.Status {
		l.Status = next
		if err := r.Loans.Save(ctx, l); err != nil {
			return fmt.Errorf("save loan: %w", err)
		}
	}
	return nil
}
