package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan describes a single originated or historical loan. Loans are
// append-only: repayment progress is tracked externally.
type Loan struct {
	ID             int64
	CustomerID     int64
	LoanAmount     decimal.Decimal
	Tenure         int
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	EMIsPaidOnTime int
	DateOfApproval time.Time
	EndDate        time.Time
}

// Active reports whether the loan is still running on the given date.
func (l Loan) Active(ref time.Time) bool {
	return !l.EndDate.Before(DateOnly(ref))
}

// RepaymentsLeft returns the number of outstanding installments,
// never negative even when historical data overshoots the tenure.
func (l Loan) RepaymentsLeft() int {
	left := l.Tenure - l.EMIsPaidOnTime
	if left < 0 {
		return 0
	}
	return left
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
