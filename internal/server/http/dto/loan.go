package dto

// CreateLoanResponse reports an origination outcome. LoanID and
// MonthlyInstallment are null when the request was rejected.
type CreateLoanResponse struct {
	LoanID             *int64   `json:"loan_id"`
	CustomerID         int64    `json:"customer_id"`
	LoanApproved       bool     `json:"loan_approved"`
	Message            string   `json:"message"`
	MonthlyInstallment *float64 `json:"monthly_installment"`
}

// LoanDetailsResponse is the single-loan view with its customer.
type LoanDetailsResponse struct {
	LoanID             int64           `json:"loan_id"`
	Customer           CustomerSummary `json:"customer"`
	LoanAmount         float64         `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	MonthlyInstallment float64         `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
}

// LoanStatementResponse is one row of a customer's loan list.
type LoanStatementResponse struct {
	LoanID             int64   `json:"loan_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRate       float64 `json:"interest_rate"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	RepaymentsLeft     int     `json:"repayments_left"`
}
