package lending

import "context"

type BorrowerRepository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByID(ctx context.Context, id string) (*Borrower, error)
	List(ctx context.Context) ([]Borrower, error)
	Save(ctx context.Context, b *Borrower) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type LoanRepository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	CountByBorrowerID(ctx context.Context, borrowerID string) (int64, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, loanID string) error
	DeleteAll(ctx context.Context) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	List(ctx context.Context) ([]Payment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
	Save(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, paymentID string) error
	DeleteByLoanID(ctx context.Context, loanID string) error
	DeleteAll(ctx context.Context) error
}
