package ledgermock

import (
	"context"
	"sort"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/domain/uow"
)

// Store is an in-memory ledger implementing all three repositories plus
// the unit of work. "Transactions" are plain function calls; tests that
// need rollback behavior should use the sql-backed repositories instead.
type Store struct {
	borrowers map[string]lending.Borrower
	loans     map[string]lending.Loan
	payments  map[string]lending.Payment
}

func NewStore() *Store {
	return &Store{
		borrowers: map[string]lending.Borrower{},
		loans:     map[string]lending.Loan{},
		payments:  map[string]lending.Payment{},
	}
}

// Repos returns the store wearing each repository interface.
func (s *Store) Repos() uow.Repos {
	return uow.Repos{
		Borrowers: (*storeBorrowers)(s),
		Loans:     (*storeLoans)(s),
		Payments:  (*storePayments)(s),
	}
}

// WithinTx satisfies uow.UnitOfWork.
func (s *Store) WithinTx(_ context.Context, fn func(r uow.Repos) error) error {
	return fn(s.Repos())
}

var (
	_ lending.BorrowerRepository = (*storeBorrowers)(nil)
	_ lending.LoanRepository     = (*storeLoans)(nil)
	_ lending.PaymentRepository  = (*storePayments)(nil)
	_ uow.UnitOfWork             = (*Store)(nil)
)

type storeBorrowers Store

func (s *storeBorrowers) Create(_ context.Context, b *lending.Borrower) error {
	s.borrowers[b.ID] = *b
	return nil
}

func (s *storeBorrowers) GetByID(_ context.Context, id string) (*lending.Borrower, error) {
	b, ok := s.borrowers[id]
	if !ok {
		return nil, lending.ErrNotFound
	}
	return &b, nil
}

func (s *storeBorrowers) List(_ context.Context) ([]lending.Borrower, error) {
	out := make([]lending.Borrower, 0, len(s.borrowers))
	for _, b := range s.borrowers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *storeBorrowers) Save(_ context.Context, b *lending.Borrower) error {
	s.borrowers[b.ID] = *b
	return nil
}

func (s *storeBorrowers) Delete(_ context.Context, id string) error {
	delete(s.borrowers, id)
	return nil
}

func (s *storeBorrowers) DeleteAll(_ context.Context) error {
	s.borrowers = map[string]lending.Borrower{}
	return nil
}

func (s *storeBorrowers) Count(_ context.Context) (int64, error) {
	return int64(len(s.borrowers)), nil
}

type storeLoans Store

func (s *storeLoans) Create(_ context.Context, l *lending.Loan) error {
	s.loans[l.LoanID] = *l
	return nil
}

func (s *storeLoans) GetByLoanID(_ context.Context, loanID string) (*lending.Loan, error) {
	l, ok := s.loans[loanID]
	if !ok {
		return nil, lending.ErrNotFound
	}
	return &l, nil
}

func (s *storeLoans) List(_ context.Context) ([]lending.Loan, error) {
	out := make([]lending.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoanID < out[j].LoanID })
	return out, nil
}

func (s *storeLoans) ListByBorrowerID(_ context.Context, borrowerID string) ([]lending.Loan, error) {
	out := []lending.Loan{}
	for _, l := range s.loans {
		if l.BorrowerID == borrowerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoanID < out[j].LoanID })
	return out, nil
}

func (s *storeLoans) CountByBorrowerID(_ context.Context, borrowerID string) (int64, error) {
	var n int64
	for _, l := range s.loans {
		if l.BorrowerID == borrowerID {
			n++
		}
	}
	return n, nil
}

func (s *storeLoans) Save(_ context.Context, l *lending.Loan) error {
	s.loans[l.LoanID] = *l
	return nil
}

func (s *storeLoans) Delete(_ context.Context, loanID string) error {
	delete(s.loans, loanID)
	return nil
}

func (s *storeLoans) DeleteAll(_ context.Context) error {
	s.loans = map[string]lending.Loan{}
	return nil
}

type storePayments Store

func (s *storePayments) Create(_ context.Context, p *lending.Payment) error {
	s.payments[p.PaymentID] = *p
	return nil
}

func (s *storePayments) GetByPaymentID(_ context.Context, paymentID string) (*lending.Payment, error) {
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, lending.ErrNotFound
	}
	return &p, nil
}

func (s *storePayments) List(_ context.Context) ([]lending.Payment, error) {
	out := make([]lending.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentID < out[j].PaymentID })
	return out, nil
}

func (s *storePayments) ListByLoanID(_ context.Context, loanID string) ([]lending.Payment, error) {
	out := []lending.Payment{}
	for _, p := range s.payments {
		if p.LoanID == loanID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentID < out[j].PaymentID })
	return out, nil
}

func (s *storePayments) Save(_ context.Context, p *lending.Payment) error {
	s.payments[p.PaymentID] = *p
	return nil
}

func (s *storePayments) Delete(_ context.Context, paymentID string) error {
	delete(s.payments, paymentID)
	return nil
}

func (s *storePayments) DeleteByLoanID(_ context.Context, loanID string) error {
	for id, p := range s.payments {
		if p.LoanID == loanID {
			delete(s.payments, id)
		}
	}
	return nil
}

func (s *storePayments) DeleteAll(_ context.Context) error {
	s.payments = map[string]lending.Payment{}
	return nil
}
