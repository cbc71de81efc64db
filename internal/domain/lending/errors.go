package lending

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrBorrowerNotFound = errors.New("borrower not found")
	ErrLoanNotFound     = errors.New("loan not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	// ErrBorrowerHasLoans guards borrower deletion: a borrower may only be
	// removed once it has zero loans.
	ErrBorrowerHasLoans = errors.New("borrower has associated loans")

	ErrInvalidInput = errors.New("invalid input")
	ErrFutureDate   = errors.New("payment date must not be in the future")
	ErrBadDate      = errors.New("unparseable date")
)
