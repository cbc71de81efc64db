// Package engine holds the pure loan accounting, status derivation and
// dashboard aggregation functions. Every function works on an explicit
// (loan, payments, today) snapshot: no storage access, no hidden clock.
package engine

import (
	"math"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/pkg/dates"
)

// TotalDue returns principal plus simple interest applied once per planned
// installment: principal + principal × (rate/100) × installments. Interest
// is not compounded and not adjusted for elapsed periods.
func TotalDue(l *lending.Loan) float64 {
	installments := float64(l.Installments())
	interest := l.Principal * (l.InterestRate / 100) * installments
	return l.Principal + interest
}

// RemainingBalance is TotalDue minus everything received, floored at zero.
// Overpayment is accounted, never rejected.
func RemainingBalance(l *lending.Loan, payments []lending.Payment) float64 {
	return math.Max(0, TotalDue(l)-sumAmounts(payments))
}

// Distribution is a payment's split between principal and interest.
type Distribution struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// PaymentDistribution splits an amount proportionally using ratios fixed by
// the loan's original terms. The same two ratios apply to every payment on
// the loan, first through last; this is a simple-interest simplification,
// not an amortization schedule.
func PaymentDistribution(l *lending.Loan, paymentAmount float64) Distribution {
	installments := float64(l.Installments())
	totalInterest := l.Principal * (l.InterestRate / 100) * installments
	total := l.Principal + totalInterest
	if total <= 0 {
		// Zero principal and zero interest: nothing to divide by.
		return Distribution{}
	}
	return Distribution{
		Principal: paymentAmount * (l.Principal / total),
		Interest:  paymentAmount * (totalInterest / total),
	}
}

// InstallmentAmount returns the planned per-installment amount,
// (principal + total simple interest) / installments. Non-positive or NaN
// inputs short-circuit to 0 so form-level calls never see NaN.
func InstallmentAmount(principal, interestRate float64, installments int) float64 {
	if math.IsNaN(principal) || math.IsNaN(interestRate) ||
		principal <= 0 || interestRate <= 0 || installments <= 0 {
		return 0
	}
	n := float64(installments)
	totalInterest := principal * (interestRate / 100) * n
	return (principal + totalInterest) / n
}

// overdueReference picks the date an overdue check compares against: the
// schedule's next payment date when a schedule exists, the loan due date
// otherwise. The boolean is false when the date does not parse.
func overdueReference(l *lending.Loan) (time.Time, bool) {
	if l.PaymentSchedule != nil {
		return dates.ParseFlexible(l.PaymentSchedule.NextPaymentDate)
	}
	return dates.ParseFlexible(l.DueDate)
}

// IsOverdue reports whether today is past the loan's reference date. The
// comparison is at full instant precision: the reference parses to
// midnight, so any time-of-day on the reference day itself already counts
// as overdue. Day-level counting happens in DeriveStatus, not here.
func IsOverdue(l *lending.Loan, today time.Time) bool {
	ref, ok := overdueReference(l)
	if !ok {
		return false
	}
	return today.After(ref)
}

// DaysOverdue returns the whole days elapsed past the reference date, or 0
// when the loan is not overdue or its reference date does not parse.
func DaysOverdue(l *lending.Loan, today time.Time) int {
	if !IsOverdue(l, today) {
		return 0
	}
	ref, _ := overdueReference(l)
	return dates.DaysBetween(today, ref)
}

func sumAmounts(payments []lending.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}
