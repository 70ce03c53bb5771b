package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/creditum/creditum/internal/domain/model"
)

// RegistrationFacade describes customer onboarding required by handlers.
type RegistrationFacade interface {
	Register(ctx context.Context, firstName, lastName string, age int, phoneNumber string, monthlySalary decimal.Decimal) (*model.Customer, error)
}

// LoanFacade encapsulates loan operations exposed via HTTP.
type LoanFacade interface {
	CheckEligibility(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.EligibilityResult, error)
	OriginateLoan(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.OriginationResult, error)
	LoanDetails(ctx context.Context, loanID int64) (*model.LoanDetails, error)
	CustomerLoans(ctx context.Context, customerID int64) ([]model.LoanStatement, error)
}

// CreditFacade aggregates the full set of operations used across handlers.
type CreditFacade interface {
	RegistrationFacade
	LoanFacade
}
