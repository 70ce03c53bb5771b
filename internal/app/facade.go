package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/creditum/creditum/internal/adapter/cache"
	"github.com/creditum/creditum/internal/domain/model"
	"github.com/creditum/creditum/internal/usecase"
)

// CreditFacade aggregates the use cases behind a single surface for the
// HTTP layer. Loan read views go through the cache; decision paths never
// do.
type CreditFacade struct {
	registration *usecase.RegistrationUseCase
	origination  *usecase.OriginationUseCase
	cache        cache.Cache
}

// NewCreditFacade constructs the facade.
func NewCreditFacade(registration *usecase.RegistrationUseCase, origination *usecase.OriginationUseCase, c cache.Cache) *CreditFacade {
	return &CreditFacade{registration: registration, origination: origination, cache: c}
}

// Register creates a customer with its derived approved limit.
func (f *CreditFacade) Register(ctx context.Context, firstName, lastName string, age int, phoneNumber string, monthlySalary decimal.Decimal) (*model.Customer, error) {
	return f.registration.Register(ctx, firstName, lastName, age, phoneNumber, monthlySalary)
}

// CheckEligibility previews a loan request verdict.
func (f *CreditFacade) CheckEligibility(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.EligibilityResult, error) {
	return f.origination.CheckEligibility(ctx, customerID, loanAmount, requestedRate, tenure)
}

// OriginateLoan commits a loan request and invalidates the customer's
// cached loan list on approval.
func (f *CreditFacade) OriginateLoan(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.OriginationResult, error) {
	result, err := f.origination.OriginateLoan(ctx, customerID, loanAmount, requestedRate, tenure)
	if err != nil {
		return nil, err
	}
	if result.Approved {
		f.cache.Delete(ctx, customerLoansKey(customerID))
	}
	return result, nil
}

// LoanDetails returns a loan with its customer, read-through cached.
func (f *CreditFacade) LoanDetails(ctx context.Context, loanID int64) (*model.LoanDetails, error) {
	key := loanKey(loanID)
	if payload, ok := f.cache.Get(ctx, key); ok {
		var details model.LoanDetails
		if err := json.Unmarshal(payload, &details); err == nil {
			return &details, nil
		}
	}

	details, err := f.origination.LoanDetails(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(details); err == nil {
		f.cache.Set(ctx, key, payload)
	}
	return details, nil
}

// CustomerLoans lists a customer's loans, read-through cached.
func (f *CreditFacade) CustomerLoans(ctx context.Context, customerID int64) ([]model.LoanStatement, error) {
	key := customerLoansKey(customerID)
	if payload, ok := f.cache.Get(ctx, key); ok {
		var statements []model.LoanStatement
		if err := json.Unmarshal(payload, &statements); err == nil {
			return statements, nil
		}
	}

	statements, err := f.origination.CustomerLoans(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(statements); err == nil {
		f.cache.Set(ctx, key, payload)
	}
	return statements, nil
}

func loanKey(loanID int64) string {
	return fmt.Sprintf("loan:%d", loanID)
}

func customerLoansKey(customerID int64) string {
	return fmt.Sprintf("customer:%d:loans", customerID)
}
