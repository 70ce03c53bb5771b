package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSourceCustomers(t *testing.T) {
	path := writeSeedFile(t, "customers.csv",
		"Customer ID,First Name,Last Name,Age,Phone Number,Monthly Salary,Approved Limit\n"+
			"1,Asha,Rao,29,9876543210,50000,1800000\n"+
			"2,Vikram,Singh,33,9876543211,62500.50,2300000\n")

	source := NewFileSource(path, "")

	customers, err := source.Customers()
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, int64(1), customers[0].ID)
	assert.Equal(t, "Asha", customers[0].FirstName)
	assert.Equal(t, "Rao", customers[0].LastName)
	assert.Equal(t, 29, customers[0].Age)
	assert.Equal(t, "9876543210", customers[0].PhoneNumber)
	assert.True(t, customers[0].MonthlySalary.Equal(decimal.NewFromInt(50000)))
	assert.True(t, customers[1].MonthlySalary.Equal(decimal.RequireFromString("62500.50")))
}

func TestFileSourceLoans(t *testing.T) {
	path := writeSeedFile(t, "loans.csv",
		"Loan ID,Customer ID,Loan Amount,Tenure,Interest Rate,Monthly payment,EMIs paid on Time,Date of Approval,End Date\n"+
			"1,1,100000,12,12.5,8884.88,4,2025-04-01,2026-04-01\n")

	source := NewFileSource("", path)

	loans, err := source.Loans()
	require.NoError(t, err)
	require.Len(t, loans, 1)

	l := loans[0]
	assert.Equal(t, int64(1), l.ID)
	assert.Equal(t, int64(1), l.CustomerID)
	assert.True(t, l.LoanAmount.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 12, l.Tenure)
	assert.True(t, l.InterestRate.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, l.MonthlyPayment.Equal(decimal.RequireFromString("8884.88")))
	assert.Equal(t, 4, l.EMIsPaidOnTime)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), l.DateOfApproval)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), l.EndDate)
}

func TestFileSourceUnconfiguredPaths(t *testing.T) {
	source := NewFileSource("", "")

	customers, err := source.Customers()
	require.NoError(t, err)
	assert.Nil(t, customers)

	loans, err := source.Loans()
	require.NoError(t, err)
	assert.Nil(t, loans)
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"), "")

	_, err := source.Customers()
	assert.Error(t, err)
}

func TestFileSourceHeaderOnly(t *testing.T) {
	path := writeSeedFile(t, "customers.csv",
		"Customer ID,First Name,Last Name,Age,Phone Number,Monthly Salary,Approved Limit\n")

	source := NewFileSource(path, "")

	customers, err := source.Customers()
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestFileSourceBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			name: "non-numeric id",
			content: "Customer ID,First Name,Last Name,Age,Phone Number,Monthly Salary,Approved Limit\n" +
				"abc,Asha,Rao,29,9876543210,50000,1800000\n",
		},
		{
			name: "bad salary",
			content: "Customer ID,First Name,Last Name,Age,Phone Number,Monthly Salary,Approved Limit\n" +
				"1,Asha,Rao,29,9876543210,lots,1800000\n",
		},
		{
			name: "missing column",
			content: "Customer ID,First Name\n" +
				"1,Asha\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := NewFileSource(writeSeedFile(t, "customers.csv", tc.content), "")
			_, err := source.Customers()
			assert.Error(t, err)
		})
	}
}

func TestFileSourceBadLoanDate(t *testing.T) {
	path := writeSeedFile(t, "loans.csv",
		"Loan ID,Customer ID,Loan Amount,Tenure,Interest Rate,Monthly payment,EMIs paid on Time,Date of Approval,End Date\n"+
			"1,1,100000,12,12.5,8884.88,4,01/04/2025,2026-04-01\n")

	source := NewFileSource("", path)

	_, err := source.Loans()
	assert.Error(t, err)
}
