package test

import (
	"context"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/domain/model"
	"github.com/creditum/creditum/internal/domain/repository"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	Customers map[int64]*model.Customer
	Next      int64
	Err       error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		Customers: make(map[int64]*model.Customer),
		Next:      1,
	}
}

// Add registers an existing customer under its own identifier.
func (s *CustomerRepositoryStub) Add(customer model.Customer) {
	if s.Customers == nil {
		s.Customers = make(map[int64]*model.Customer)
	}
	s.Customers[customer.ID] = &customer
	if customer.ID >= s.Next {
		s.Next = customer.ID + 1
	}
}

// Create stores a customer unless the phone number is already taken.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Customers == nil {
		s.Customers = make(map[int64]*model.Customer)
	}
	for _, existing := range s.Customers {
		if existing.PhoneNumber == customer.PhoneNumber {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	customer.ID = s.Next
	s.Next++
	s.Customers[customer.ID] = &customer
	return &customer, nil
}

// GetByID fetches a customer or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.Customers[id]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrCustomerNotFound
}

// LoanRepositoryStub keeps loans in-memory and mimics the serialized
// origination path of the real storage.
type LoanRepositoryStub struct {
	Customers *CustomerRepositoryStub
	Loans     []model.Loan
	NextID    int64

	GetByIDFn        func(context.Context, int64) (*model.Loan, error)
	ListByCustomerFn func(context.Context, int64) ([]model.Loan, error)
	OriginateFn      func(context.Context, int64, repository.OriginateFunc) (*model.Loan, error)

	ListCalls int
}

// GetByID fetches a stored loan or returns not found.
func (s *LoanRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, l := range s.Loans {
		if l.ID == id {
			loan := l
			return &loan, nil
		}
	}
	return nil, domainErrors.ErrLoanNotFound
}

// ListByCustomer returns stored loans of one customer.
func (s *LoanRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Loan, error) {
	s.ListCalls++
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	var result []model.Loan
	for _, l := range s.Loans {
		if l.CustomerID == customerID {
			result = append(result, l)
		}
	}
	return result, nil
}

// OriginateForCustomer runs decide against the in-memory state and
// appends the approved loan.
func (s *LoanRepositoryStub) OriginateForCustomer(ctx context.Context, customerID int64, decide repository.OriginateFunc) (*model.Loan, error) {
	if s.OriginateFn != nil {
		return s.OriginateFn(ctx, customerID, decide)
	}

	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	history, err := s.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	loan, err := decide(*customer, history)
	if err != nil || loan == nil {
		return nil, err
	}

	if s.NextID == 0 {
		s.NextID = 1
	}
	loan.ID = s.NextID
	s.NextID++
	s.Loans = append(s.Loans, *loan)
	return loan, nil
}

// SeedRepositoryStub records bulk-load invocations.
type SeedRepositoryStub struct {
	SeedCustomersFn func(context.Context, []model.Customer) (int, error)
	SeedLoansFn     func(context.Context, []model.Loan) (int, error)

	Customers []model.Customer
	Loans     []model.Loan
}

// SeedCustomers stores the customers handed to the bulk load.
func (s *SeedRepositoryStub) SeedCustomers(ctx context.Context, customers []model.Customer) (int, error) {
	if s.SeedCustomersFn != nil {
		return s.SeedCustomersFn(ctx, customers)
	}
	s.Customers = append(s.Customers, customers...)
	return len(customers), nil
}

// SeedLoans stores the loans handed to the bulk load.
func (s *SeedRepositoryStub) SeedLoans(ctx context.Context, loans []model.Loan) (int, error) {
	if s.SeedLoansFn != nil {
		return s.SeedLoansFn(ctx, loans)
	}
	s.Loans = append(s.Loans, loans...)
	return len(loans), nil
}
