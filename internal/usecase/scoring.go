package usecase

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/domain/model"
)

// CreditScore condenses a customer's loan history into a score in [0,100].
// Starting from 100 it penalizes missed installments, the overall number
// of loans, and approvals within the reference year; exceeding the
// approved limit overrides everything to 0.
//
// The punctuality denominator uses the newly requested tenure, not each
// historical loan's own tenure. That matches the externally observed
// approval decisions and must not be corrected here.
func CreditScore(customer model.Customer, history []model.Loan, requestedTenure int, ref time.Time) (int, error) {
	if requestedTenure <= 0 {
		return 0, domainErrors.ErrInvalidInput
	}

	score := 100.0

	if len(history) > 0 {
		var paidOnTime int
		for _, l := range history {
			paidOnTime += l.EMIsPaidOnTime
		}
		onTimeRatio := float64(paidOnTime) / float64(len(history)*requestedTenure)
		score -= (1 - onTimeRatio) * 30
	}

	score -= math.Min(float64(len(history))*2, 20)

	var approvedThisYear int
	for _, l := range history {
		if l.DateOfApproval.Year() == ref.Year() {
			approvedThisYear++
		}
	}
	score -= math.Min(float64(approvedThisYear)*5, 15)

	volume := decimal.Zero
	for _, l := range history {
		volume = volume.Add(l.LoanAmount)
	}
	if volume.GreaterThan(customer.ApprovedLimit) {
		score = 0
	}

	score = math.Max(0, math.Min(100, score))
	return int(score), nil
}
