package test

import "github.com/creditum/creditum/internal/domain/model"

// SeedSourceStub serves fixed seed records.
type SeedSourceStub struct {
	CustomerRecords []model.Customer
	LoanRecords     []model.Loan
	CustomersErr    error
	LoansErr        error
}

// Customers returns the configured customer records.
func (s SeedSourceStub) Customers() ([]model.Customer, error) {
	return s.CustomerRecords, s.CustomersErr
}

// Loans returns the configured loan records.
func (s SeedSourceStub) Loans() ([]model.Loan, error) {
	return s.LoanRecords, s.LoansErr
}
