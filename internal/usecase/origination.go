package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/domain/model"
	"github.com/creditum/creditum/internal/domain/repository"
)

const (
	msgApproved = "Loan successfully approved."
	msgRejected = "Loan not approved based on eligibility criteria."
)

var half = decimal.New(5, -1)

// timeNow is swapped in tests to pin the reference date.
var timeNow = time.Now

// OriginationUseCase orchestrates scoring, the eligibility policy and the
// EMI calculator into a single verdict, and persists approved loans.
type OriginationUseCase struct {
	customers repository.CustomerRepository
	loans     repository.LoanRepository
}

// NewOriginationUseCase constructs OriginationUseCase.
func NewOriginationUseCase(customers repository.CustomerRepository, loans repository.LoanRepository) *OriginationUseCase {
	return &OriginationUseCase{customers: customers, loans: loans}
}

// CheckEligibility previews the verdict for a loan request without side
// effects.
func (u *OriginationUseCase) CheckEligibility(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.EligibilityResult, error) {
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	history, err := u.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return u.evaluate(*customer, history, loanAmount, requestedRate, tenure)
}

// evaluate is the shared decision path of CheckEligibility and
// OriginateLoan. The two entry points must never diverge in logic.
func (u *OriginationUseCase) evaluate(customer model.Customer, history []model.Loan, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.EligibilityResult, error) {
	if loanAmount.Sign() <= 0 || requestedRate.Sign() < 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	today := model.DateOnly(timeNow())
	score, err := CreditScore(customer, history, tenure, today)
	if err != nil {
		return nil, err
	}
	approved, correctedRate := EvaluatePolicy(score, requestedRate)

	// Affordability override: active EMIs above half the salary always
	// reject, independent of the tier outcome.
	activeEMIs := decimal.Zero
	for _, l := range history {
		if l.Active(today) {
			activeEMIs = activeEMIs.Add(l.MonthlyPayment)
		}
	}
	if activeEMIs.GreaterThan(customer.MonthlySalary.Mul(half)) {
		approved = false
	}

	installment, err := ComputeEMI(loanAmount, correctedRate, tenure)
	if err != nil {
		return nil, err
	}

	return &model.EligibilityResult{
		CustomerID:         customer.ID,
		Approved:           approved,
		RequestedRate:      requestedRate,
		CorrectedRate:      correctedRate,
		Tenure:             tenure,
		MonthlyInstallment: installment.Round(2),
	}, nil
}

// OriginateLoan evaluates eligibility and, on approval, persists the new
// loan. The history read and the insert run under a per-customer lock so
// concurrent requests cannot decide on stale history.
func (u *OriginationUseCase) OriginateLoan(ctx context.Context, customerID int64, loanAmount, requestedRate decimal.Decimal, tenure int) (*model.OriginationResult, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	loan, err := u.loans.OriginateForCustomer(ctx, customerID, func(customer model.Customer, history []model.Loan) (*model.Loan, error) {
		verdict, err := u.evaluate(customer, history, loanAmount, requestedRate, tenure)
		if err != nil {
			return nil, err
		}
		if !verdict.Approved {
			return nil, nil
		}

		today := model.DateOnly(timeNow())
		return &model.Loan{
			CustomerID:     customer.ID,
			LoanAmount:     loanAmount,
			Tenure:         tenure,
			InterestRate:   verdict.CorrectedRate,
			MonthlyPayment: verdict.MonthlyInstallment,
			EMIsPaidOnTime: 0,
			DateOfApproval: today,
			EndDate:        today.AddDate(0, tenure, 0),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if loan == nil {
		return &model.OriginationResult{
			CustomerID: customerID,
			Approved:   false,
			Message:    msgRejected,
		}, nil
	}

	installment := loan.MonthlyPayment
	return &model.OriginationResult{
		LoanID:             &loan.ID,
		CustomerID:         customerID,
		Approved:           true,
		Message:            msgApproved,
		MonthlyInstallment: &installment,
	}, nil
}

// LoanDetails returns a loan together with its owning customer.
func (u *OriginationUseCase) LoanDetails(ctx context.Context, loanID int64) (*model.LoanDetails, error) {
	loan, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	customer, err := u.customers.GetByID(ctx, loan.CustomerID)
	if err != nil {
		return nil, err
	}
	return &model.LoanDetails{Loan: *loan, Customer: *customer}, nil
}

// CustomerLoans lists a customer's loans with repayment progress.
func (u *OriginationUseCase) CustomerLoans(ctx context.Context, customerID int64) ([]model.LoanStatement, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	statements := make([]model.LoanStatement, 0, len(loans))
	for _, l := range loans {
		statements = append(statements, model.LoanStatement{Loan: l, RepaymentsLeft: l.RepaymentsLeft()})
	}
	return statements, nil
}
