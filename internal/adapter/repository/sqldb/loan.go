package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *lending.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*lending.Loan, error) {
	var out lending.Loan
	res := r.db.WithContext(ctx).Where("id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, lending.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).Order("issue_date DESC, pk DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByBorrowerID(ctx context.Context, borrowerID string) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("issue_date DESC, pk DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountByBorrowerID(ctx context.Context, borrowerID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&lending.Loan{}).Where("borrower_id = ?", borrowerID).Count(&n)
	return n, res.Error
}

func (r *LoanRepository) Save(ctx context.Context, l *lending.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).Where("id = ?", loanID).Delete(&lending.Loan{}).Error
}

func (r *LoanRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&lending.Loan{}).Error
}
