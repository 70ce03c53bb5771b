package errors

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrLoanNotFound     = errors.New("loan not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAlreadyExists    = errors.New("already exists")
)
