// Package sqldb implements the ledger repositories on gorm. The same code
// runs against MySQL in production and in-memory SQLite in tests.
package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *lending.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id string) (*lending.Borrower, error) {
	var out lending.Borrower
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, lending.ErrNotFound
	}
	return &out, res.Error
}

func (r *BorrowerRepository) List(ctx context.Context) ([]lending.Borrower, error) {
	var out []lending.Borrower
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) Save(ctx context.Context, b *lending.Borrower) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BorrowerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&lending.Borrower{}).Error
}

func (r *BorrowerRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&lending.Borrower{}).Error
}

func (r *BorrowerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&lending.Borrower{}).Count(&n)
	return n, res.Error
}
