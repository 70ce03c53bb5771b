package repository

import (
	"context"

	"github.com/creditum/creditum/internal/domain/model"
)

// OriginateFunc decides on a new loan given the customer and its full
// loan history. Returning a nil loan means the request was rejected and
// nothing must be written.
type OriginateFunc func(customer model.Customer, history []model.Loan) (*model.Loan, error)

// LoanRepository describes persistence operations for loans.
type LoanRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Loan, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Loan, error)

	// OriginateForCustomer runs decide inside a transaction that holds a
	// per-customer lock, so the history read and the loan insert cannot
	// interleave with a concurrent origination for the same customer.
	OriginateForCustomer(ctx context.Context, customerID int64, decide OriginateFunc) (*model.Loan, error)
}
