package model

import "github.com/shopspring/decimal"

// EligibilityResult is the verdict produced for a loan request.
type EligibilityResult struct {
	CustomerID         int64
	Approved           bool
	RequestedRate      decimal.Decimal
	CorrectedRate      decimal.Decimal
	Tenure             int
	MonthlyInstallment decimal.Decimal
}

// OriginationResult reports the outcome of a loan creation attempt.
// LoanID is nil when the request was rejected.
type OriginationResult struct {
	LoanID             *int64
	CustomerID         int64
	Approved           bool
	Message            string
	MonthlyInstallment *decimal.Decimal
}

// LoanDetails combines a loan with its owning customer for read queries.
type LoanDetails struct {
	Loan     Loan
	Customer Customer
}

// LoanStatement is a per-loan view row with repayment progress.
type LoanStatement struct {
	Loan           Loan
	RepaymentsLeft int
}
