package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *lending.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*lending.Payment, error) {
	var out lending.Payment
	res := r.db.WithContext(ctx).Where("id = ?", paymentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, lending.ErrNotFound
	}
	return &out, res.Error
}

func (r *PaymentRepository) List(ctx context.Context) ([]lending.Payment, error) {
	var out []lending.Payment
	res := r.db.WithContext(ctx).Order("date DESC, pk DESC").Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]lending.Payment, error) {
	var out []lending.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("date DESC, pk DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *lending.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) Delete(ctx context.Context, paymentID string) error {
	return r.db.WithContext(ctx).Where("id = ?", paymentID).Delete(&lending.Payment{}).Error
}

func (r *PaymentRepository) DeleteByLoanID(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&lending.Payment{}).Error
}

func (r *PaymentRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&lending.Payment{}).Error
}
