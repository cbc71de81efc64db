package engine

import (
	"log"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/pkg/dates"
)

// LoanMetrics summarizes one loan for display. TotalInterest is the sum of
// the interest portions actually recorded on payments, not the theoretical
// total from the loan's terms.
type LoanMetrics struct {
	TotalPrincipal   float64 `json:"totalPrincipal"`
	TotalInterest    float64 `json:"totalInterest"`
	TotalPaid        float64 `json:"totalPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// MetricsForLoan folds one loan and its payments into LoanMetrics.
func MetricsForLoan(l *lending.Loan, payments []lending.Payment) LoanMetrics {
	m := LoanMetrics{TotalPrincipal: l.Principal}
	for _, p := range payments {
		m.TotalPaid += p.Amount
		m.TotalInterest += p.Interest
	}
	m.RemainingBalance = RemainingBalance(l, payments)
	return m
}

// DashboardMetrics is the portfolio-wide summary.
type DashboardMetrics struct {
	TotalLoaned           float64 `json:"totalLoaned"`
	TotalInterestAccrued  float64 `json:"totalInterestAccrued"`
	TotalOverdue          float64 `json:"totalOverdue"`
	TotalBorrowers        int     `json:"totalBorrowers"`
	ActiveLoanCount       int     `json:"activeLoanCount"`
	PaidLoanCount         int     `json:"paidLoanCount"`
	OverdueLoanCount      int     `json:"overdueLoanCount"`
	DefaultedLoanCount    int     `json:"defaultedLoanCount"`
	TotalReceivedThisMonth float64 `json:"totalReceivedThisMonth"`
}

// Metrics folds the full ledger snapshot into DashboardMetrics. Payments
// with unparseable dates still count toward interest accrual but are left
// out of the current-month receipts.
func Metrics(loans []lending.Loan, payments []lending.Payment, borrowerCount int, today time.Time) DashboardMetrics {
	m := DashboardMetrics{TotalBorrowers: borrowerCount}

	byLoan := make(map[string][]lending.Payment, len(loans))
	for _, p := range payments {
		byLoan[p.LoanID] = append(byLoan[p.LoanID], p)
		m.TotalInterestAccrued += p.Interest
		if t, ok := dates.ParseFlexible(p.Date); ok && dates.SameMonth(t, today) {
			m.TotalReceivedThisMonth += p.Amount
		}
	}

	for i := range loans {
		l := &loans[i]
		m.TotalLoaned += l.Principal
		switch l.Status {
		case lending.StatusActive:
			m.ActiveLoanCount++
		case lending.StatusPaid:
			m.PaidLoanCount++
		case lending.StatusOverdue:
			m.OverdueLoanCount++
		case lending.StatusDefaulted:
			m.DefaultedLoanCount++
		}
		if l.Status == lending.StatusOverdue || l.Status == lending.StatusDefaulted {
			m.TotalOverdue += RemainingBalance(l, byLoan[l.LoanID])
		}
	}
	return m
}

// OverdueLoans filters loans to overdue or defaulted status.
func OverdueLoans(loans []lending.Loan) []lending.Loan {
	out := make([]lending.Loan, 0)
	for _, l := range loans {
		if l.Status == lending.StatusOverdue || l.Status == lending.StatusDefaulted {
			out = append(out, l)
		}
	}
	return out
}

// UpcomingDueLoans selects loans whose next scheduled payment is due today,
// falls within the next `days` days, or is already past without the loan
// being paid. Loans without a schedule, or whose next payment date does not
// parse, are skipped (logged, never fatal). Each loan id appears at most
// once.
func UpcomingDueLoans(loans []lending.Loan, days int, today time.Time) []lending.Loan {
	day := dates.Normalize(today)
	horizon := day.AddDate(0, 0, days)

	out := make([]lending.Loan, 0)
	seen := make(map[string]struct{}, len(loans))
	for _, l := range loans {
		if l.PaymentSchedule == nil || l.PaymentSchedule.NextPaymentDate == "" {
			continue
		}
		next, ok := dates.ParseFlexible(l.PaymentSchedule.NextPaymentDate)
		if !ok {
			log.Printf("upcoming: loan %s has unparseable nextPaymentDate %q, skipping", l.LoanID, l.PaymentSchedule.NextPaymentDate)
			continue
		}
		if _, dup := seen[l.LoanID]; dup {
			continue
		}

		nextDay := dates.Normalize(next)
		isToday := nextDay.Equal(day)
		isUpcoming := nextDay.After(day) && !nextDay.After(horizon)
		isDue := !nextDay.After(day)

		show := isToday ||
			isUpcoming ||
			(isDue && l.Status != lending.StatusPaid) ||
			l.Status == lending.StatusOverdue
		if show {
			seen[l.LoanID] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}
