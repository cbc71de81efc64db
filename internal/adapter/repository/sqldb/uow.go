package sqldb

import (
	"context"

	"gorm.io/gorm"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/domain/uow"
)

// interface conformance
var (
	_ lending.BorrowerRepository = (*BorrowerRepository)(nil)
	_ lending.LoanRepository     = (*LoanRepository)(nil)
	_ lending.PaymentRepository  = (*PaymentRepository)(nil)
	_ uow.UnitOfWork             = (*GormUoW)(nil)
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx runs fn inside one db transaction, handing it repositories bound
// to the tx. Any error rolls the whole batch back.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Borrowers: &BorrowerRepository{db: tx},
			Loans:     &LoanRepository{db: tx},
			Payments:  &PaymentRepository{db: tx},
		})
	})
}
