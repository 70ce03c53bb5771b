package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/creditum/creditum/internal/domain/model"
)

const dateLayout = "2006-01-02"

// Source reads historical customer and loan records for the one-time
// bulk load.
type Source interface {
	Customers() ([]model.Customer, error)
	Loans() ([]model.Loan, error)
}

// FileSource reads the original tabular exports as CSV files with their
// spreadsheet headers. An empty path disables the corresponding table.
type FileSource struct {
	customerPath string
	loanPath     string
}

// NewFileSource creates a CSV-backed seed source.
func NewFileSource(customerPath, loanPath string) *FileSource {
	return &FileSource{customerPath: customerPath, loanPath: loanPath}
}

// Customers parses the customer export. Returns nil when no file is
// configured.
func (s *FileSource) Customers() ([]model.Customer, error) {
	if s.customerPath == "" {
		return nil, nil
	}

	records, err := readTable(s.customerPath)
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, len(records))
	for _, rec := range records {
		c, err := parseCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.customerPath, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// Loans parses the loan export. Returns nil when no file is configured.
func (s *FileSource) Loans() ([]model.Loan, error) {
	if s.loanPath == "" {
		return nil, nil
	}

	records, err := readTable(s.loanPath)
	if err != nil {
		return nil, err
	}

	loans := make([]model.Loan, 0, len(records))
	for _, rec := range records {
		l, err := parseLoan(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.loanPath, err)
		}
		loans = append(loans, l)
	}
	return loans, nil
}

func parseCustomer(rec record) (model.Customer, error) {
	c := model.Customer{
		FirstName:   rec.text("First Name"),
		LastName:    rec.text("Last Name"),
		PhoneNumber: rec.text("Phone Number"),
	}
	var err error
	if c.ID, err = rec.integer("Customer ID"); err != nil {
		return c, err
	}
	if c.Age, err = rec.count("Age"); err != nil {
		return c, err
	}
	if c.MonthlySalary, err = rec.amount("Monthly Salary"); err != nil {
		return c, err
	}
	if c.ApprovedLimit, err = rec.amount("Approved Limit"); err != nil {
		return c, err
	}
	return c, nil
}

func parseLoan(rec record) (model.Loan, error) {
	var l model.Loan
	var err error
	if l.ID, err = rec.integer("Loan ID"); err != nil {
		return l, err
	}
	if l.CustomerID, err = rec.integer("Customer ID"); err != nil {
		return l, err
	}
	if l.LoanAmount, err = rec.amount("Loan Amount"); err != nil {
		return l, err
	}
	if l.Tenure, err = rec.count("Tenure"); err != nil {
		return l, err
	}
	if l.InterestRate, err = rec.amount("Interest Rate"); err != nil {
		return l, err
	}
	if l.MonthlyPayment, err = rec.amount("Monthly payment"); err != nil {
		return l, err
	}
	if l.EMIsPaidOnTime, err = rec.count("EMIs paid on Time"); err != nil {
		return l, err
	}
	if l.DateOfApproval, err = rec.date("Date of Approval"); err != nil {
		return l, err
	}
	if l.EndDate, err = rec.date("End Date"); err != nil {
		return l, err
	}
	return l, nil
}

// record is a single CSV row addressed by header name.
type record struct {
	header map[string]int
	fields []string
	line   int
}

func readTable(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[name] = i
	}

	records := make([]record, 0, len(rows)-1)
	for i, fields := range rows[1:] {
		records = append(records, record{header: header, fields: fields, line: i + 2})
	}
	return records, nil
}

func (r record) text(column string) string {
	idx, ok := r.header[column]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

func (r record) integer(column string) (int64, error) {
	v, err := strconv.ParseInt(r.text(column), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %q: %w", r.line, column, err)
	}
	return v, nil
}

func (r record) count(column string) (int, error) {
	v, err := r.integer(column)
	return int(v), err
}

func (r record) amount(column string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(r.text(column))
	if err != nil {
		return decimal.Zero, fmt.Errorf("line %d: column %q: %w", r.line, column, err)
	}
	return v, nil
}

func (r record) date(column string) (time.Time, error) {
	v, err := time.Parse(dateLayout, r.text(column))
	if err != nil {
		return time.Time{}, fmt.Errorf("line %d: column %q: %w", r.line, column, err)
	}
	return v, nil
}
