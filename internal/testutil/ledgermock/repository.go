// Package ledgermock provides test doubles for the ledger repositories:
// function-backed mocks for targeted expectations, and an in-memory store
// implementing every repository plus the unit of work for flow tests.
package ledgermock

import (
	"context"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

// BorrowerRepo is a function-backed mock satisfying
// lending.BorrowerRepository. Unset methods are no-ops returning zero
// values or ErrNotFound.
type BorrowerRepo struct {
	CreateFn    func(ctx context.Context, b *lending.Borrower) error
	GetByIDFn   func(ctx context.Context, id string) (*lending.Borrower, error)
	ListFn      func(ctx context.Context) ([]lending.Borrower, error)
	SaveFn      func(ctx context.Context, b *lending.Borrower) error
	DeleteFn    func(ctx context.Context, id string) error
	DeleteAllFn func(ctx context.Context) error
	CountFn     func(ctx context.Context) (int64, error)
}

func (m *BorrowerRepo) Create(ctx context.Context, b *lending.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *BorrowerRepo) GetByID(ctx context.Context, id string) (*lending.Borrower, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, lending.ErrNotFound
}

func (m *BorrowerRepo) List(ctx context.Context) ([]lending.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *BorrowerRepo) Save(ctx context.Context, b *lending.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *BorrowerRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *BorrowerRepo) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return nil
}

func (m *BorrowerRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// LoanRepo is a function-backed mock satisfying lending.LoanRepository.
type LoanRepo struct {
	CreateFn             func(ctx context.Context, l *lending.Loan) error
	GetByLoanIDFn        func(ctx context.Context, loanID string) (*lending.Loan, error)
	ListFn               func(ctx context.Context) ([]lending.Loan, error)
	ListByBorrowerIDFn   func(ctx context.Context, borrowerID string) ([]lending.Loan, error)
	CountByBorrowerIDFn  func(ctx context.Context, borrowerID string) (int64, error)
	SaveFn               func(ctx context.Context, l *lending.Loan) error
	DeleteFn             func(ctx context.Context, loanID string) error
	DeleteAllFn          func(ctx context.Context) error
}

func (m *LoanRepo) Create(ctx context.Context, l *lending.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *LoanRepo) GetByLoanID(ctx context.Context, loanID string) (*lending.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, lending.ErrNotFound
}

func (m *LoanRepo) List(ctx context.Context) ([]lending.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *LoanRepo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]lending.Loan, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, nil
}

func (m *LoanRepo) CountByBorrowerID(ctx context.Context, borrowerID string) (int64, error) {
	if m.CountByBorrowerIDFn != nil {
		return m.CountByBorrowerIDFn(ctx, borrowerID)
	}
	return 0, nil
}

func (m *LoanRepo) Save(ctx context.Context, l *lending.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *LoanRepo) Delete(ctx context.Context, loanID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return nil
}

func (m *LoanRepo) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return nil
}

// PaymentRepo is a function-backed mock satisfying lending.PaymentRepository.
type PaymentRepo struct {
	CreateFn         func(ctx context.Context, p *lending.Payment) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*lending.Payment, error)
	ListFn           func(ctx context.Context) ([]lending.Payment, error)
	ListByLoanIDFn   func(ctx context.Context, loanID string) ([]lending.Payment, error)
	SaveFn           func(ctx context.Context, p *lending.Payment) error
	DeleteFn         func(ctx context.Context, paymentID string) error
	DeleteByLoanIDFn func(ctx context.Context, loanID string) error
	DeleteAllFn      func(ctx context.Context) error
}

func (m *PaymentRepo) Create(ctx context.Context, p *lending.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*lending.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, lending.ErrNotFound
}

func (m *PaymentRepo) List(ctx context.Context) ([]lending.Payment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *PaymentRepo) ListByLoanID(ctx context.Context, loanID string) ([]lending.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *PaymentRepo) Save(ctx context.Context, p *lending.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) Delete(ctx context.Context, paymentID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, paymentID)
	}
	return nil
}

func (m *PaymentRepo) DeleteByLoanID(ctx context.Context, loanID string) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}

func (m *PaymentRepo) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return nil
}
