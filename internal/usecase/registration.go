package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/domain/model"
	"github.com/creditum/creditum/internal/domain/repository"
)

var (
	thirtySix = decimal.NewFromInt(36)
	lakh      = decimal.NewFromInt(100000)
)

// ApprovedLimitFor derives the lifetime exposure cap from monthly salary:
// 36 salaries, rounded half-up to the nearest lakh.
func ApprovedLimitFor(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Mul(thirtySix).Div(lakh).Round(0).Mul(lakh)
}

// RegistrationUseCase creates customers with their derived approved limit.
type RegistrationUseCase struct {
	customers repository.CustomerRepository
}

// NewRegistrationUseCase constructs RegistrationUseCase.
func NewRegistrationUseCase(customers repository.CustomerRepository) *RegistrationUseCase {
	return &RegistrationUseCase{customers: customers}
}

// Register stores a new customer. The approved limit is computed here,
// never accepted from the caller, and is immutable afterwards.
func (u *RegistrationUseCase) Register(ctx context.Context, firstName, lastName string, age int, phoneNumber string, monthlySalary decimal.Decimal) (*model.Customer, error) {
	if firstName == "" || lastName == "" || phoneNumber == "" || age <= 0 || monthlySalary.Sign() < 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	customer := model.Customer{
		FirstName:     firstName,
		LastName:      lastName,
		Age:           age,
		PhoneNumber:   phoneNumber,
		MonthlySalary: monthlySalary,
		ApprovedLimit: ApprovedLimitFor(monthlySalary),
	}
	return u.customers.Create(ctx, customer)
}
