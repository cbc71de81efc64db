package engine

import (
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/pkg/dates"
)

// defaultAfterDays is the overdue threshold beyond which a loan is
// considered defaulted.
const defaultAfterDays = 90

// DeriveStatus projects a loan's lifecycle status from its terms, payment
// history and the supplied clock. It is a pure recomputation from scratch:
// no previous status is consulted, and a later call with fewer payments can
// move a loan back out of "paid".
//
// Rules, in order:
//  1. fully paid off (remaining balance ≤ 0) → paid, regardless of dates;
//  2. a payment recorded in today's calendar month → paid (the
//     "current for this period" overload, see paidForCurrentMonth);
//  3. reference date (schedule's nextPaymentDate, else dueDate) in the
//     past → overdue, or defaulted past 90 whole days;
//  4. otherwise active.
func DeriveStatus(l *lending.Loan, payments []lending.Payment, today time.Time) lending.Status {
	if RemainingBalance(l, payments) <= 0 {
		return lending.StatusPaid
	}

	if paidForCurrentMonth(payments, today) {
		return lending.StatusPaid
	}

	if l.PaymentSchedule != nil && l.PaymentSchedule.NextPaymentDate != "" {
		next, ok := dates.ParseFlexible(l.PaymentSchedule.NextPaymentDate)
		if ok && next.Before(today) {
			if dates.DaysBetween(today, next) > defaultAfterDays {
				return lending.StatusDefaulted
			}
			return lending.StatusOverdue
		}
		// Unparseable or future next payment date: not overdue.
		return lending.StatusActive
	}

	// No schedule: fall back to the due-date overdue count.
	if d := DaysOverdue(l, today); d > 0 {
		if d > defaultAfterDays {
			return lending.StatusDefaulted
		}
		return lending.StatusOverdue
	}

	return lending.StatusActive
}

// paidForCurrentMonth reports whether any payment falls in the same
// calendar month and year as today. A loan with this month's installment
// recorded shows as "paid" even though it is not fully amortized — the
// status value is overloaded as a "current for this period" signal. Kept
// behind this single function so a future revision can split the two
// meanings without touching the rest of the engine.
func paidForCurrentMonth(payments []lending.Payment, today time.Time) bool {
	for _, p := range payments {
		if t, ok := dates.ParseFlexible(p.Date); ok && dates.SameMonth(t, today) {
			return true
		}
	}
	return false
}
