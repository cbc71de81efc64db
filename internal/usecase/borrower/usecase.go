package borrower

import (
	"context"
	"fmt"
	"strings"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/pkg/id"
)

type Usecase struct {
	borrowers lending.BorrowerRepository
	loans     lending.LoanRepository
}

func NewUsecase(borrowers lending.BorrowerRepository, loans lending.LoanRepository) *Usecase {
	return &Usecase{borrowers: borrowers, loans: loans}
}

type CreateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*lending.Borrower, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return nil, fmt.Errorf("%w: name must have at least 2 characters", lending.ErrInvalidInput)
	}
	b := &lending.Borrower{
		ID:    id.New(),
		Name:  name,
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
	if err := u.borrowers.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create borrower: %w", err)
	}
	return b, nil
}

// UpdateInput carries a partial update; nil fields stay untouched.
type UpdateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (u *Usecase) Update(ctx context.Context, borrowerID string, in UpdateInput) (*lending.Borrower, error) {
	b, err := u.borrowers.GetByID(ctx, borrowerID)
	if err != nil {
		return nil, lending.ErrBorrowerNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 2 {
			return nil, fmt.Errorf("%w: name must have at least 2 characters", lending.ErrInvalidInput)
		}
		b.Name = name
	}
	if in.Email != nil {
		b.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		b.Phone = strings.TrimSpace(*in.Phone)
	}
	if err := u.borrowers.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save borrower: %w", err)
	}
	return b, nil
}

// Delete refuses to remove a borrower that still has loans; the referential
// invariant is that no loan may be orphaned.
func (u *Usecase) Delete(ctx context.Context, borrowerID string) error {
	if _, err := u.borrowers.GetByID(ctx, borrowerID); err != nil {
		return lending.ErrBorrowerNotFound
	}
	n, err := u.loans.CountByBorrowerID(ctx, borrowerID)
	if err != nil {
		return fmt.Errorf("count loans: %w", err)
	}
	if n > 0 {
		return lending.ErrBorrowerHasLoans
	}
	return u.borrowers.Delete(ctx, borrowerID)
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*lending.Borrower, error) {
	b, err := u.borrowers.GetByID(ctx, borrowerID)
	if err != nil {
		return nil, lending.ErrBorrowerNotFound
	}
	return b, nil
}

func (u *Usecase) List(ctx context.Context) ([]lending.Borrower, error) {
	return u.borrowers.List(ctx)
}
