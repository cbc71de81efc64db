package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/testutil/ledgermock"
	"github.com/Danielteini939/Emprest/pkg/dates"
)

var today = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newUsecase(t *testing.T) (*Usecase, *ledgermock.Store, string) {
	t.Helper()
	s := ledgermock.NewStore()
	r := s.Repos()
	uc := NewUsecase(r.Borrowers, r.Loans, r.Payments, s)
	uc.SetClock(func() time.Time { return today })

	b := &lending.Borrower{ID: "borrower-1", Name: "Maria Silva"}
	if err := r.Borrowers.Create(context.Background(), b); err != nil {
		t.Fatalf("seed borrower: %v", err)
	}
	return uc, s, b.ID
}

func validCreate(borrowerID string) CreateInput {
	return CreateInput{
		BorrowerID:   borrowerID,
		Principal:    5000,
		InterestRate: 5,
		IssueDate:    "2025-06-01",
		DueDate:      "2026-06-01",
		Schedule: &ScheduleInput{
			Frequency:    lending.FrequencyMonthly,
			Installments: 12,
		},
	}
}

func TestCreate_DenormalizesNameAndFixesSchedule(t *testing.T) {
	uc, _, borrowerID := newUsecase(t)
	l, err := uc.Create(context.Background(), validCreate(borrowerID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.BorrowerName != "Maria Silva" {
		t.Fatalf("borrowerName = %q", l.BorrowerName)
	}
	if l.Status != lending.StatusActive {
		t.Fatalf("status = %s, want active", l.Status)
	}
	sched := l.PaymentSchedule
	if sched == nil {
		t.Fatal("schedule missing")
	}
	// Next payment derived from issue date + one monthly period.
	if sched.NextPaymentDate != "2025-07-01" {
		t.Fatalf("nextPaymentDate = %q, want 2025-07-01", sched.NextPaymentDate)
	}
	// (5000 + 5000×0.05×12) / 12
	want := 8000.0 / 12
	if diff := sched.InstallmentAmount - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("installmentAmount = %v, want %v", sched.InstallmentAmount, want)
	}
}

func TestCreate_UnknownBorrower(t *testing.T) {
	uc, _, _ := newUsecase(t)
	in := validCreate("ghost")
	if _, err := uc.Create(context.Background(), in); !errors.Is(err, lending.ErrBorrowerNotFound) {
		t.Fatalf("err = %v, want ErrBorrowerNotFound", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	uc, _, borrowerID := newUsecase(t)
	ctx := context.Background()

	in := validCreate(borrowerID)
	in.Principal = 0
	if _, err := uc.Create(ctx, in); !errors.Is(err, lending.ErrInvalidInput) {
		t.Fatalf("zero principal: %v", err)
	}

	in = validCreate(borrowerID)
	in.IssueDate = "junk"
	if _, err := uc.Create(ctx, in); !errors.Is(err, lending.ErrBadDate) {
		t.Fatalf("bad issue date: %v", err)
	}

	in = validCreate(borrowerID)
	in.Schedule.Installments = 0
	if _, err := uc.Create(ctx, in); !errors.Is(err, lending.ErrInvalidInput) {
		t.Fatalf("zero installments: %v", err)
	}
}

func TestUpdate_BorrowerChangeSyncsName(t *testing.T) {
	uc, store, borrowerID := newUsecase(t)
	ctx := context.Background()
	_ = store.Repos().Borrowers.Create(ctx, &lending.Borrower{ID: "borrower-2", Name: "João Souza"})

	l, _ := uc.Create(ctx, validCreate(borrowerID))

	next := "borrower-2"
	got, err := uc.Update(ctx, l.LoanID, UpdateInput{BorrowerID: &next})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.BorrowerID != "borrower-2" || got.BorrowerName != "João Souza" {
		t.Fatalf("name not re-synced: %+v", got)
	}
}

func TestUpdate_TermsChangeRefixesInstallmentAmount(t *testing.T) {
	uc, _, borrowerID := newUsecase(t)
	ctx := context.Background()
	l, _ := uc.Create(ctx, validCreate(borrowerID))

	principal := 6000.0
	got, err := uc.Update(ctx, l.LoanID, UpdateInput{Principal: &principal})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := (6000 + 6000*0.05*12) / 12
	if diff := got.PaymentSchedule.InstallmentAmount - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("installmentAmount = %v, want %v", got.PaymentSchedule.InstallmentAmount, want)
	}
}

func TestUpdate_RecomputesStatus(t *testing.T) {
	uc, _, borrowerID := newUsecase(t)
	ctx := context.Background()
	l, _ := uc.Create(ctx, validCreate(borrowerID))

	// Move the schedule's next payment 100 days into the past.
	past := dates.Format(today.AddDate(0, 0, -100))
	got, err := uc.Update(ctx, l.LoanID, UpdateInput{Schedule: &ScheduleInput{
		Frequency:       lending.FrequencyMonthly,
		NextPaymentDate: past,
		Installments:    12,
	}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != lending.StatusDefaulted {
		t.Fatalf("status = %s, want defaulted", got.Status)
	}
}

func TestDelete_CascadesPayments(t *testing.T) {
	uc, store, borrowerID := newUsecase(t)
	ctx := context.Background()
	l, _ := uc.Create(ctx, validCreate(borrowerID))

	r := store.Repos()
	_ = r.Payments.Create(ctx, &lending.Payment{PaymentID: "p1", LoanID: l.LoanID, Amount: 100, Date: "2025-06-02"})
	_ = r.Payments.Create(ctx, &lending.Payment{PaymentID: "p2", LoanID: l.LoanID, Amount: 100, Date: "2025-06-03"})

	if err := uc.Delete(ctx, l.LoanID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Get(ctx, l.LoanID); !errors.Is(err, lending.ErrLoanNotFound) {
		t.Fatal("loan still present")
	}
	if ps, _ := r.Payments.ListByLoanID(ctx, l.LoanID); len(ps) != 0 {
		t.Fatalf("payments not cascaded: %+v", ps)
	}
}

func TestMetrics(t *testing.T) {
	uc, store, borrowerID := newUsecase(t)
	ctx := context.Background()
	l, _ := uc.Create(ctx, validCreate(borrowerID))
	_ = store.Repos().Payments.Create(ctx, &lending.Payment{
		PaymentID: "p1", LoanID: l.LoanID, Date: "2025-06-02",
		Amount: 800, Principal: 500, Interest: 300,
	})

	m, err := uc.Metrics(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.TotalPaid != 800 || m.TotalInterest != 300 {
		t.Fatalf("metrics = %+v", m)
	}
	if diff := m.RemainingBalance - 7200; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("remaining = %v, want 7200", m.RemainingBalance)
	}
}

func TestUpdate_ListPaymentsFailure(t *testing.T) {
	boom := errors.New("boom")
	loans := &ledgermock.LoanRepo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*lending.Loan, error) {
			return &lending.Loan{LoanID: loanID, Principal: 100, Status: lending.StatusActive}, nil
		},
	}
	payments := &ledgermock.PaymentRepo{
		ListByLoanIDFn: func(ctx context.Context, loanID string) ([]lending.Payment, error) {
			return nil, boom
		},
	}
	uc := NewUsecase(&ledgermock.BorrowerRepo{}, loans, payments, nil)
	uc.SetClock(func() time.Time { return today })

	notes := "late fee waived"
	if _, err := uc.Update(context.Background(), "l1", UpdateInput{Notes: &notes}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestUpdate_SaveFailure(t *testing.T) {
	boom := errors.New("boom")
	loans := &ledgermock.LoanRepo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*lending.Loan, error) {
			return &lending.Loan{LoanID: loanID, Principal: 100, Status: lending.StatusActive}, nil
		},
		SaveFn: func(ctx context.Context, l *lending.Loan) error { return boom },
	}
	uc := NewUsecase(&ledgermock.BorrowerRepo{}, loans, &ledgermock.PaymentRepo{}, nil)
	uc.SetClock(func() time.Time { return today })

	notes := "late fee waived"
	if _, err := uc.Update(context.Background(), "l1", UpdateInput{Notes: &notes}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestCreate_RepositoryFailure(t *testing.T) {
	boom := errors.New("boom")
	borrowers := &ledgermock.BorrowerRepo{
		GetByIDFn: func(ctx context.Context, id string) (*lending.Borrower, error) {
			return &lending.Borrower{ID: id, Name: "Maria Silva"}, nil
		},
	}
	loans := &ledgermock.LoanRepo{
		CreateFn: func(ctx context.Context, l *lending.Loan) error { return boom },
	}
	uc := NewUsecase(borrowers, loans, &ledgermock.PaymentRepo{}, nil)
	uc.SetClock(func() time.Time { return today })

	if _, err := uc.Create(context.Background(), validCreate("b1")); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestRefreshStatuses(t *testing.T) {
	uc, store, borrowerID := newUsecase(t)
	ctx := context.Background()

	in := validCreate(borrowerID)
	in.Schedule.NextPaymentDate = dates.Format(today.AddDate(0, 0, -10))
	l, _ := uc.Create(ctx, in)
	// Creation already derived "overdue"; force a stale status to simulate
	// a loan persisted before time passed.
	r := store.Repos()
	stale, _ := r.Loans.GetByLoanID(ctx, l.LoanID)
	stale.Status = lending.StatusActive
	_ = r.Loans.Save(ctx, stale)

	changed, err := uc.RefreshStatuses(ctx)
	if err != nil {
		t.Fatalf("RefreshStatuses: %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}
	got, _ := r.Loans.GetByLoanID(ctx, l.LoanID)
	if got.Status != lending.StatusOverdue {
		t.Fatalf("status = %s, want overdue", got.Status)
	}

	// Second sweep is a no-op.
	if changed, _ := uc.RefreshStatuses(ctx); changed != 0 {
		t.Fatalf("second sweep changed = %d, want 0", changed)
	}
}
