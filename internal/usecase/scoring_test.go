package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/domain/model"
)

var scoringRef = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

func scoringCustomer(limit int64) model.Customer {
	return model.Customer{
		ID:            1,
		MonthlySalary: decimal.NewFromInt(50000),
		ApprovedLimit: decimal.NewFromInt(limit),
	}
}

func historicalLoan(amount int64, tenure, paidOnTime int, approved time.Time) model.Loan {
	return model.Loan{
		CustomerID:     1,
		LoanAmount:     decimal.NewFromInt(amount),
		Tenure:         tenure,
		EMIsPaidOnTime: paidOnTime,
		DateOfApproval: approved,
		EndDate:        approved.AddDate(0, tenure, 0),
	}
}

func TestCreditScoreNoHistory(t *testing.T) {
	score, err := CreditScore(scoringCustomer(1800000), nil, 12, scoringRef)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestCreditScorePerfectHistory(t *testing.T) {
	// One fully repaid loan from an earlier year: only the loan-count
	// penalty of 2 applies.
	history := []model.Loan{
		historicalLoan(100000, 12, 12, time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	score, err := CreditScore(scoringCustomer(1800000), history, 12, scoringRef)
	require.NoError(t, err)
	assert.Equal(t, 98, score)
}

func TestCreditScoreMissedInstallments(t *testing.T) {
	// Half the installments paid on time: 15 punctuality + 2 count.
	history := []model.Loan{
		historicalLoan(100000, 12, 6, time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	score, err := CreditScore(scoringCustomer(1800000), history, 12, scoringRef)
	require.NoError(t, err)
	assert.Equal(t, 83, score)
}

func TestCreditScoreCurrentYearPenalty(t *testing.T) {
	history := []model.Loan{
		historicalLoan(100000, 12, 12, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)),
	}

	score, err := CreditScore(scoringCustomer(1800000), history, 12, scoringRef)
	require.NoError(t, err)
	assert.Equal(t, 93, score)
}

func TestCreditScoreLoanCountPenaltyCapped(t *testing.T) {
	var history []model.Loan
	for i := 0; i < 12; i++ {
		history = append(history, historicalLoan(10000, 12, 12, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))
	}

	score, err := CreditScore(scoringCustomer(1800000), history, 12, scoringRef)
	require.NoError(t, err)
	// Punctuality is perfect, count penalty caps at 20, nothing this year.
	assert.Equal(t, 80, score)
}

func TestCreditScoreExposureOverride(t *testing.T) {
	history := []model.Loan{
		historicalLoan(1000000, 12, 12, time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)),
		historicalLoan(900000, 12, 12, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	score, err := CreditScore(scoringCustomer(1800000), history, 12, scoringRef)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestCreditScoreClampedAtHundred(t *testing.T) {
	// Historical tenures longer than the requested one can push the
	// punctuality ratio above 1; the score never exceeds 100.
	history := []model.Loan{
		historicalLoan(100000, 24, 24, time.Date(2022, time.March, 5, 0, 0, 0, 0, time.UTC)),
		historicalLoan(100000, 24, 24, time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	score, err := CreditScore(scoringCustomer(1800000), history, 12, scoringRef)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestCreditScoreInvalidTenure(t *testing.T) {
	_, err := CreditScore(scoringCustomer(1800000), nil, 0, scoringRef)
	assert.True(t, errors.Is(err, domainErrors.ErrInvalidInput))
}
