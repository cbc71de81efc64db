package lending

import "time"

// Status is a loan's lifecycle status. It is a derived field: every write
// path that touches a loan's payments or schedule recomputes it from the
// engine before persisting.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusDefaulted Status = "defaulted"
)

// Frequency is a payment schedule's cadence.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyCustom    Frequency = "custom"
)

type Borrower struct {
	ID        string    `gorm:"primaryKey;size:32;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Phone     string    `gorm:"size:64" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }

// PaymentSchedule describes a loan's planned repayment cadence.
// InstallmentAmount is computed once at loan creation/edit time; it is not
// recomputed as payments come in.
type PaymentSchedule struct {
	Frequency         Frequency `json:"frequency"`
	NextPaymentDate   string    `json:"nextPaymentDate"`
	Installments      int       `json:"installments"`
	InstallmentAmount float64   `json:"installmentAmount"`
}

// Loan dates are stored as yyyy-MM-dd strings, matching the persisted
// record layout. Parsing happens in the engine, which must tolerate
// malformed values without failing.
type Loan struct {
	ID              uint64           `gorm:"primaryKey;column:pk" json:"-"`
	LoanID          string           `gorm:"size:32;uniqueIndex:ux_loans_loan_id;column:id" json:"id"`
	BorrowerID      string           `gorm:"size:32;index:idx_loans_borrower" json:"borrowerId"`
	BorrowerName    string           `gorm:"size:255" json:"borrowerName"`
	Principal       float64          `gorm:"type:decimal(18,2)" json:"principal"`
	InterestRate    float64          `gorm:"type:decimal(8,4)" json:"interestRate"`
	IssueDate       string           `gorm:"size:10" json:"issueDate"`
	DueDate         string           `gorm:"size:10" json:"dueDate"`
	Status          Status           `gorm:"size:16;default:'active'" json:"status"`
	PaymentSchedule *PaymentSchedule `gorm:"serializer:json" json:"paymentSchedule,omitempty"`
	Notes           string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"-"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Installments returns the planned installment count, defaulting to 1 when
// the loan has no schedule.
func (l *Loan) Installments() int {
	if l.PaymentSchedule == nil || l.PaymentSchedule.Installments <= 0 {
		return 1
	}
	return l.PaymentSchedule.Installments
}

// Payment records a received amount plus its principal/interest split. The
// split is fixed at entry time by the engine and never rewritten.
type Payment struct {
	ID        uint64    `gorm:"primaryKey;column:pk" json:"-"`
	PaymentID string    `gorm:"size:32;uniqueIndex:ux_payments_payment_id;column:id" json:"id"`
	LoanID    string    `gorm:"size:32;index:idx_payments_loan" json:"loanId"`
	Date      string    `gorm:"size:10" json:"date"`
	Amount    float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Principal float64   `gorm:"type:decimal(18,2)" json:"principal"`
	Interest  float64   `gorm:"type:decimal(18,2)" json:"interest"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Payment) TableName() string { return "payments" }
