package uow

import (
	"context"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

// Repos bundles the ledger repositories bound to one transaction.
type Repos struct {
	Borrowers lending.BorrowerRepository
	Loans     lending.LoanRepository
	Payments  lending.PaymentRepository
}

// UnitOfWork runs a function with all repositories sharing a transaction.
// Used for flows that must stay atomic: cascading loan deletion, payment
// entry plus status persist, and bulk import.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
