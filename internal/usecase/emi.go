package usecase

import (
	"github.com/shopspring/decimal"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// ComputeEMI returns the fixed monthly payment for an amortized loan:
// P·r·(1+r)^n / ((1+r)^n − 1) with r the monthly fractional rate. A zero
// rate degenerates to straight-line repayment. The result is unrounded;
// callers round for display.
func ComputeEMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) (decimal.Decimal, error) {
	if principal.Sign() <= 0 || tenureMonths <= 0 || annualRatePercent.Sign() < 0 {
		return decimal.Zero, domainErrors.ErrInvalidInput
	}

	months := decimal.NewFromInt(int64(tenureMonths))
	r := annualRatePercent.Div(hundred).Div(twelve)
	if r.IsZero() {
		return principal.Div(months), nil
	}

	growth := one.Add(r).Pow(months)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(one)), nil
}
