package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/test"
)

func TestApprovedLimitFor(t *testing.T) {
	cases := []struct {
		name   string
		salary string
		want   string
	}{
		{name: "rounds half up to the next lakh", salary: "12500", want: "500000"},
		{name: "exact multiple", salary: "50000", want: "1800000"},
		{name: "rounds down below half", salary: "12000", want: "400000"},
		{name: "zero salary", salary: "0", want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApprovedLimitFor(decimal.RequireFromString(tc.salary))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "limit %s, want %s", got, tc.want)
		})
	}
}

func TestRegister(t *testing.T) {
	repo := test.NewCustomerRepositoryStub()
	u := NewRegistrationUseCase(repo)

	customer, err := u.Register(context.Background(), "Asha", "Rao", 29, "9876543210", decimal.NewFromInt(50000))
	require.NoError(t, err)

	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "Asha", customer.FirstName)
	assert.True(t, customer.ApprovedLimit.Equal(decimal.NewFromInt(1800000)), "approved limit %s", customer.ApprovedLimit)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	repo := test.NewCustomerRepositoryStub()
	u := NewRegistrationUseCase(repo)

	phone := test.RandomPhoneNumber()
	_, err := u.Register(context.Background(), "Asha", "Rao", 29, phone, decimal.NewFromInt(50000))
	require.NoError(t, err)

	_, err = u.Register(context.Background(), "Vikram", "Rao", 33, phone, decimal.NewFromInt(60000))
	assert.True(t, errors.Is(err, domainErrors.ErrAlreadyExists))
}

func TestRegisterInvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		firstName string
		lastName  string
		age       int
		phone     string
		salary    decimal.Decimal
	}{
		{name: "empty first name", lastName: "Rao", age: 29, phone: "9876543210", salary: decimal.NewFromInt(50000)},
		{name: "empty last name", firstName: "Asha", age: 29, phone: "9876543210", salary: decimal.NewFromInt(50000)},
		{name: "empty phone", firstName: "Asha", lastName: "Rao", age: 29, salary: decimal.NewFromInt(50000)},
		{name: "zero age", firstName: "Asha", lastName: "Rao", phone: "9876543210", salary: decimal.NewFromInt(50000)},
		{name: "negative salary", firstName: "Asha", lastName: "Rao", age: 29, phone: "9876543210", salary: decimal.NewFromInt(-1)},
	}

	repo := test.NewCustomerRepositoryStub()
	u := NewRegistrationUseCase(repo)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.Register(context.Background(), tc.firstName, tc.lastName, tc.age, tc.phone, tc.salary)
			assert.True(t, errors.Is(err, domainErrors.ErrInvalidInput))
		})
	}
}
