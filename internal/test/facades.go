package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/creditum/creditum/internal/domain/model"
)

// RegistrationFacadeStub provides controllable behaviour for the
// registration endpoint.
type RegistrationFacadeStub struct {
	RegisterFn func(context.Context, string, string, int, string, decimal.Decimal) (*model.Customer, error)
}

// Register delegates to the provided function or returns a default customer.
func (s RegistrationFacadeStub) Register(ctx context.Context, firstName, lastName string, age int, phoneNumber string, monthlySalary decimal.Decimal) (*model.Customer, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, firstName, lastName, age, phoneNumber, monthlySalary)
	}
	return &model.Customer{
		ID:            1,
		FirstName:     firstName,
		LastName:      lastName,
		Age:           age,
		PhoneNumber:   phoneNumber,
		MonthlySalary: monthlySalary,
		ApprovedLimit: monthlySalary.Mul(decimal.NewFromInt(36)),
	}, nil
}

// LoanFacadeStub simulates loan operations for handler tests.
type LoanFacadeStub struct {
	CheckFn     func(context.Context, int64, decimal.Decimal, decimal.Decimal, int) (*model.EligibilityResult, error)
	OriginateFn func(context.Context, int64, decimal.Decimal, decimal.Decimal, int) (*model.OriginationResult, error)
	DetailsFn   func(context.Context, int64) (*model.LoanDetails, error)
	LoansFn     func(context.Context, int64) ([]model.LoanStatement, error)
}

// CheckEligibility returns the configured verdict or a default approval.
func (s LoanFacadeStub) CheckEligibility(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.EligibilityResult, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, customerID, loanAmount, requestedRate, tenure)
	}
	return &model.EligibilityResult{
		CustomerID:         customerID,
		Approved:           true,
		RequestedRate:      requestedRate,
		CorrectedRate:      requestedRate,
		Tenure:             tenure,
		MonthlyInstallment: decimal.NewFromInt(100),
	}, nil
}

// OriginateLoan returns the configured outcome or a default approval.
func (s LoanFacadeStub) OriginateLoan(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.OriginationResult, error) {
	if s.OriginateFn != nil {
		return s.OriginateFn(ctx, customerID, loanAmount, requestedRate, tenure)
	}
	loanID := int64(1)
	installment := decimal.NewFromInt(100)
	return &model.OriginationResult{
		LoanID:             &loanID,
		CustomerID:         customerID,
		Approved:           true,
		Message:            "Loan successfully approved.",
		MonthlyInstallment: &installment,
	}, nil
}

// LoanDetails returns configured details or a minimal default.
func (s LoanFacadeStub) LoanDetails(ctx context.Context, loanID int64) (*model.LoanDetails, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, loanID)
	}
	return &model.LoanDetails{
		Loan:     model.Loan{ID: loanID, CustomerID: 1, Tenure: 12},
		Customer: model.Customer{ID: 1},
	}, nil
}

// CustomerLoans returns configured statements or a single default row.
func (s LoanFacadeStub) CustomerLoans(ctx context.Context, customerID int64) ([]model.LoanStatement, error) {
	if s.LoansFn != nil {
		return s.LoansFn(ctx, customerID)
	}
	return []model.LoanStatement{{Loan: model.Loan{ID: 1, CustomerID: customerID, Tenure: 12}, RepaymentsLeft: 12}}, nil
}

// CreditFacadeStub aggregates the stubs for router-level tests.
type CreditFacadeStub struct {
	RegistrationFacadeStub
	LoanFacadeStub
}
