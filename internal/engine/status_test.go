package engine

import (
	"testing"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/pkg/dates"
)

// today in a month guaranteed not to collide with any payment fixture month
// unless a test wants it to.
var statusToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestDeriveStatus_FullPayoffWinsRegardlessOfDates(t *testing.T) {
	l := scheduledLoan(5000, 5, 12, "2020-01-01") // years overdue
	payments := []lending.Payment{
		{LoanID: l.LoanID, Date: "2021-01-01", Amount: 8100}, // overpaid by 100
	}
	if got := DeriveStatus(l, payments, statusToday); got != lending.StatusPaid {
		t.Fatalf("status = %s, want paid", got)
	}
	// Scenario E: the balance itself reports 0, not negative.
	if bal := RemainingBalance(l, payments); bal != 0 {
		t.Fatalf("balance = %v, want 0", bal)
	}
}

func TestDeriveStatus_PaymentThisMonthShowsPaid(t *testing.T) {
	// Overdue schedule, partial payment — but it landed this calendar month.
	l := scheduledLoan(5000, 5, 12, "2025-05-01")
	payments := []lending.Payment{
		{LoanID: l.LoanID, Date: dates.Format(statusToday), Amount: 200},
	}
	if got := DeriveStatus(l, payments, statusToday); got != lending.StatusPaid {
		t.Fatalf("status = %s, want paid (current-month rule)", got)
	}
}

func TestDeriveStatus_LastMonthPaymentDoesNotCount(t *testing.T) {
	l := scheduledLoan(5000, 5, 12, "2025-05-01")
	payments := []lending.Payment{
		{LoanID: l.LoanID, Date: "2025-05-15", Amount: 200},
	}
	if got := DeriveStatus(l, payments, statusToday); got != lending.StatusOverdue {
		t.Fatalf("status = %s, want overdue", got)
	}
}

func TestDeriveStatus_ScheduleThresholds(t *testing.T) {
	cases := []struct {
		daysPast int
		want     lending.Status
	}{
		{1, lending.StatusOverdue},
		{40, lending.StatusOverdue},
		{90, lending.StatusOverdue},
		{91, lending.StatusDefaulted},
		{95, lending.StatusDefaulted},
	}
	for _, c := range cases {
		next := dates.Normalize(statusToday).AddDate(0, 0, -c.daysPast)
		l := scheduledLoan(5000, 5, 12, dates.Format(next))
		if got := DeriveStatus(l, nil, statusToday); got != c.want {
			t.Fatalf("daysPast=%d: status = %s, want %s", c.daysPast, got, c.want)
		}
	}
}

func TestDeriveStatus_NoSchedule_ScenariosBC(t *testing.T) {
	issue := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	l := &lending.Loan{
		LoanID:       "loan-b",
		Principal:    1000,
		InterestRate: 5,
		IssueDate:    dates.Format(issue),
		DueDate:      dates.Format(issue),
	}

	// Scenario B: 40 days past due → overdue.
	if got := DeriveStatus(l, nil, issue.AddDate(0, 0, 40)); got != lending.StatusOverdue {
		t.Fatalf("40d status = %s, want overdue", got)
	}
	// Scenario C: 95 days past due → defaulted.
	if got := DeriveStatus(l, nil, issue.AddDate(0, 0, 95)); got != lending.StatusDefaulted {
		t.Fatalf("95d status = %s, want defaulted", got)
	}
}

func TestDeriveStatus_FutureDueDateIsActive(t *testing.T) {
	l := &lending.Loan{
		LoanID:       "loan-a",
		Principal:    1000,
		InterestRate: 5,
		DueDate:      dates.Format(statusToday.AddDate(0, 1, 0)),
	}
	if got := DeriveStatus(l, nil, statusToday); got != lending.StatusActive {
		t.Fatalf("status = %s, want active", got)
	}
}

func TestDeriveStatus_UnparseableScheduleDateIsActive(t *testing.T) {
	l := scheduledLoan(5000, 5, 12, "not-a-date")
	if got := DeriveStatus(l, nil, statusToday); got != lending.StatusActive {
		t.Fatalf("status = %s, want active when date excluded", got)
	}
}

func TestDeriveStatus_Idempotent(t *testing.T) {
	l := scheduledLoan(5000, 5, 12, "2025-05-01")
	payments := []lending.Payment{{LoanID: l.LoanID, Date: "2025-04-02", Amount: 666.66}}
	first := DeriveStatus(l, payments, statusToday)
	second := DeriveStatus(l, payments, statusToday)
	if first != second {
		t.Fatalf("not idempotent: %s then %s", first, second)
	}
}

func TestDeriveStatus_RevertsWhenPaymentsRemoved(t *testing.T) {
	// "paid" is not terminal: deleting the payoff brings the loan back.
	l := scheduledLoan(1000, 0, 1, dates.Format(statusToday.AddDate(0, 0, 10)))
	paid := []lending.Payment{{LoanID: l.LoanID, Date: "2025-01-05", Amount: 1000}}
	if got := DeriveStatus(l, paid, statusToday); got != lending.StatusPaid {
		t.Fatalf("status = %s, want paid", got)
	}
	if got := DeriveStatus(l, nil, statusToday); got != lending.StatusActive {
		t.Fatalf("status after removal = %s, want active", got)
	}
}
