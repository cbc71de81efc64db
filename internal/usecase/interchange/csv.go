package interchange

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Danielteini939/Emprest/internal/domain/lending"
)

// Section markers of the legacy CSV layout.
const (
	sectionBorrowers = "[BORROWERS]"
	sectionLoans     = "[LOANS]"
	sectionPayments  = "[PAYMENTS]"
)

// GenerateCSV renders a snapshot in the sectioned layout. The payment
// schedule travels as a JSON string inside one quoted column.
func GenerateCSV(s Snapshot) (string, error) {
	var sb strings.Builder

	sb.WriteString(sectionBorrowers + "\n")
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"id", "name", "email", "phone"})
	for _, b := range s.Borrowers {
		_ = w.Write([]string{b.ID, b.Name, b.Email, b.Phone})
	}
	w.Flush()

	sb.WriteString("\n" + sectionLoans + "\n")
	w = csv.NewWriter(&sb)
	_ = w.Write([]string{"id", "borrowerId", "borrowerName", "principal", "interestRate", "issueDate", "dueDate", "status", "notes", "paymentSchedule"})
	for _, l := range s.Loans {
		schedule := ""
		if l.PaymentSchedule != nil {
			raw, err := json.Marshal(l.PaymentSchedule)
			if err != nil {
				return "", fmt.Errorf("encode schedule for loan %s: %w", l.LoanID, err)
			}
			schedule = string(raw)
		}
		_ = w.Write([]string{
			l.LoanID, l.BorrowerID, l.BorrowerName,
			formatNumber(l.Principal), formatNumber(l.InterestRate),
			l.IssueDate, l.DueDate, string(l.Status), l.Notes, schedule,
		})
	}
	w.Flush()

	sb.WriteString("\n" + sectionPayments + "\n")
	w = csv.NewWriter(&sb)
	_ = w.Write([]string{"id", "loanId", "date", "amount", "principal", "interest", "notes"})
	for _, p := range s.Payments {
		_ = w.Write([]string{
			p.PaymentID, p.LoanID, p.Date,
			formatNumber(p.Amount), formatNumber(p.Principal), formatNumber(p.Interest),
			p.Notes,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ParseCSV reads the sectioned layout back into a snapshot. Rows missing
// their id (or their reference id) are dropped, as the original importer
// did; structural problems (missing sections, short rows) are errors.
func ParseCSV(data string) (Snapshot, error) {
	sections, err := splitSections(data)
	if err != nil {
		return Snapshot{}, err
	}

	var s Snapshot

	borrowerRows, err := readSection(sections[sectionBorrowers])
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", sectionBorrowers, err)
	}
	for _, row := range borrowerRows {
		b := lending.Borrower{
			ID:    row["id"],
			Name:  row["name"],
			Email: row["email"],
			Phone: row["phone"],
		}
		if b.ID == "" || b.Name == "" {
			continue
		}
		s.Borrowers = append(s.Borrowers, b)
	}

	loanRows, err := readSection(sections[sectionLoans])
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", sectionLoans, err)
	}
	for _, row := range loanRows {
		l := lending.Loan{
			LoanID:       row["id"],
			BorrowerID:   row["borrowerId"],
			BorrowerName: row["borrowerName"],
			Principal:    parseNumber(row["principal"]),
			InterestRate: parseNumber(row["interestRate"]),
			IssueDate:    row["issueDate"],
			DueDate:      row["dueDate"],
			Status:       lending.Status(row["status"]),
			Notes:        row["notes"],
		}
		if raw := row["paymentSchedule"]; raw != "" {
			var sched lending.PaymentSchedule
			if err := json.Unmarshal([]byte(raw), &sched); err == nil {
				l.PaymentSchedule = &sched
			}
			// Unparseable schedules degrade to "no schedule" rather than
			// failing the batch.
		}
		if l.LoanID == "" || l.BorrowerID == "" {
			continue
		}
		s.Loans = append(s.Loans, l)
	}

	paymentRows, err := readSection(sections[sectionPayments])
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", sectionPayments, err)
	}
	for _, row := range paymentRows {
		p := lending.Payment{
			PaymentID: row["id"],
			LoanID:    row["loanId"],
			Date:      row["date"],
			Amount:    parseNumber(row["amount"]),
			Principal: parseNumber(row["principal"]),
			Interest:  parseNumber(row["interest"]),
			Notes:     row["notes"],
		}
		if p.PaymentID == "" || p.LoanID == "" {
			continue
		}
		s.Payments = append(s.Payments, p)
	}

	return s, nil
}

// splitSections cuts the raw text into the three labelled blocks.
func splitSections(data string) (map[string][]string, error) {
	out := map[string][]string{}
	current := ""
	for _, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case sectionBorrowers, sectionLoans, sectionPayments:
			current = trimmed
			continue
		}
		if current == "" || trimmed == "" {
			continue
		}
		out[current] = append(out[current], line)
	}
	for _, name := range []string{sectionBorrowers, sectionLoans, sectionPayments} {
		if _, ok := out[name]; !ok {
			return nil, fmt.Errorf("%w: missing %s section", lending.ErrInvalidInput, name)
		}
	}
	return out, nil
}

// readSection parses a block of CSV lines, mapping each data row onto its
// header columns.
func readSection(lines []string) ([]map[string]string, error) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty section", lending.ErrInvalidInput)
	}
	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
