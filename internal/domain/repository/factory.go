package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Loans() LoanRepository
	Seeds() SeedRepository
}
