package dto

// RegisterRequest describes the customer registration payload.
type RegisterRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           int     `json:"age"`
	PhoneNumber   string  `json:"phone_number"`
	MonthlySalary float64 `json:"monthly_salary"`
}

// RegisterResponse echoes the stored customer with its derived limit.
type RegisterResponse struct {
	CustomerID    int64   `json:"customer_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           int     `json:"age"`
	PhoneNumber   string  `json:"phone_number"`
	MonthlySalary float64 `json:"monthly_salary"`
	ApprovedLimit float64 `json:"approved_limit"`
}

// CustomerSummary is the nested customer block of a loan view.
type CustomerSummary struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

// ErrorResponse carries a client-visible error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
