package model

import "github.com/shopspring/decimal"

// Customer represents a registered borrower.
type Customer struct {
	ID            int64
	FirstName     string
	LastName      string
	Age           int
	PhoneNumber   string
	MonthlySalary decimal.Decimal
	ApprovedLimit decimal.Decimal
}
