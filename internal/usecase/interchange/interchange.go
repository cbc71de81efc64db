// Package interchange implements the bulk import/export boundary: a JSON
// snapshot grouping the three record arrays, plus the legacy sectioned CSV
// layout. Referential integrity is validated up front and reported as a
// violation list; the batch is never rejected wholesale.
package interchange

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/domain/uow"
	"github.com/Danielteini939/Emprest/internal/engine"
)

// Snapshot is the bulk interchange shape.
type Snapshot struct {
	Borrowers []lending.Borrower `json:"borrowers"`
	Loans     []lending.Loan     `json:"loans"`
	Payments  []lending.Payment  `json:"payments"`
}

// Violation is one unresolved reference found during validation.
type Violation struct {
	Entity string `json:"entity"` // "loan" or "payment"
	ID     string `json:"id"`
	Field  string `json:"field"` // "borrowerId" or "loanId"
	Ref    string `json:"ref"`   // the dangling id
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s %q does not resolve", v.Entity, v.ID, v.Field, v.Ref)
}

// Validate checks referential integrity across a snapshot and returns every
// dangling reference. An empty result means the snapshot is consistent.
func Validate(s Snapshot) []Violation {
	borrowerIDs := make(map[string]struct{}, len(s.Borrowers))
	for _, b := range s.Borrowers {
		borrowerIDs[b.ID] = struct{}{}
	}
	loanIDs := make(map[string]struct{}, len(s.Loans))
	for _, l := range s.Loans {
		loanIDs[l.LoanID] = struct{}{}
	}

	var out []Violation
	for _, l := range s.Loans {
		if _, ok := borrowerIDs[l.BorrowerID]; !ok {
			out = append(out, Violation{Entity: "loan", ID: l.LoanID, Field: "borrowerId", Ref: l.BorrowerID})
		}
	}
	for _, p := range s.Payments {
		if _, ok := loanIDs[p.LoanID]; !ok {
			out = append(out, Violation{Entity: "payment", ID: p.PaymentID, Field: "loanId", Ref: p.LoanID})
		}
	}
	return out
}

// Result summarizes an import.
type Result struct {
	Format     string      `json:"format"` // "json" or "csv"
	Borrowers  int         `json:"borrowers"`
	Loans      int         `json:"loans"`
	Payments   int         `json:"payments"`
	Violations []Violation `json:"violations,omitempty"`
}

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

// Export returns the full ledger as a snapshot.
func (u *Usecase) Export(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	var err error
	if s.Borrowers, err = u.borrowers.List(ctx); err != nil {
		return s, fmt.Errorf("list borrowers: %w", err)
	}
	if s.Loans, err = u.loans.List(ctx); err != nil {
		return s, fmt.Errorf("list loans: %w", err)
	}
	if s.Payments, err = u.payments.List(ctx); err != nil {
		return s, fmt.Errorf("list payments: %w", err)
	}
	return s, nil
}

// ExportCSV renders the ledger in the sectioned CSV layout.
func (u *Usecase) ExportCSV(ctx context.Context) (string, error) {
	s, err := u.Export(ctx)
	if err != nil {
		return "", err
	}
	return GenerateCSV(s)
}

// Import replaces the entire ledger with the supplied data, accepting the
// JSON snapshot first and falling back to sectioned CSV. Integrity
// violations are reported but do not block the import; statuses are
// re-derived for every imported loan so the derived-status invariant holds
// from the first read.
func (u *Usecase) Import(ctx context.Context, data []byte) (Result, error) {
	snap, format, err := decode(data)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Format:     format,
		Borrowers:  len(snap.Borrowers),
		Loans:      len(snap.Loans),
		Payments:   len(snap.Payments),
		Violations: Validate(snap),
	}

	paymentsByLoan := make(map[string][]lending.Payment, len(snap.Loans))
	for _, p := range snap.Payments {
		paymentsByLoan[p.LoanID] = append(paymentsByLoan[p.LoanID], p)
	}
	today := u.now()

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Payments.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear payments: %w", err)
		}
		if err := r.Loans.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear loans: %w", err)
		}
		if err := r.Borrowers.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear borrowers: %w", err)
		}
		for i := range snap.Borrowers {
			if err := r.Borrowers.Create(ctx, &snap.Borrowers[i]); err != nil {
				return fmt.Errorf("import borrower %s: %w", snap.Borrowers[i].ID, err)
			}
		}
		for i := range snap.Loans {
			l := &snap.Loans[i]
			l.ID = 0 // surrogate keys never travel across ledgers
			l.Status = engine.DeriveStatus(l, paymentsByLoan[l.LoanID], today)
			if err := r.Loans.Create(ctx, l); err != nil {
				return fmt.Errorf("import loan %s: %w", l.LoanID, err)
			}
		}
		for i := range snap.Payments {
			snap.Payments[i].ID = 0
			if err := r.Payments.Create(ctx, &snap.Payments[i]); err != nil {
				return fmt.Errorf("import payment %s: %w", snap.Payments[i].PaymentID, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func decode(data []byte) (Snapshot, string, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err == nil {
		if snap.Borrowers != nil && snap.Loans != nil && snap.Payments != nil {
			return snap, "json", nil
		}
		// Parsed but missing the record arrays: not our shape.
		return Snapshot{}, "", fmt.Errorf("%w: JSON must contain borrowers, loans and payments arrays", lending.ErrInvalidInput)
	}
	snap, err := ParseCSV(string(data))
	if err != nil {
		return Snapshot{}, "", err
	}
	return snap, "csv", nil
}
