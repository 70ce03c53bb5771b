package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/creditum/creditum/internal/domain/model"
	"github.com/creditum/creditum/internal/server/http/dto"
)

// LoanHandler manages eligibility checks, origination and loan views.
type LoanHandler struct {
	facade LoanFacade
}

// NewLoanHandler constructs LoanHandler.
func NewLoanHandler(facade LoanFacade) *LoanHandler {
	return &LoanHandler{facade: facade}
}

// CheckEligibility handles POST /api/check-eligibility.
func (h *LoanHandler) CheckEligibility(c *gin.Context) {
	var req dto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.CheckEligibility(c.Request.Context(), req.CustomerID,
		decimal.NewFromFloat(req.LoanAmount), decimal.NewFromFloat(req.InterestRate), req.Tenure)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{
		CustomerID:            result.CustomerID,
		Approval:              result.Approved,
		InterestRate:          result.RequestedRate.InexactFloat64(),
		CorrectedInterestRate: result.CorrectedRate.InexactFloat64(),
		Tenure:                result.Tenure,
		MonthlyInstallment:    result.MonthlyInstallment.InexactFloat64(),
	})
}

// Create handles POST /api/create-loan.
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.OriginateLoan(c.Request.Context(), req.CustomerID,
		decimal.NewFromFloat(req.LoanAmount), decimal.NewFromFloat(req.InterestRate), req.Tenure)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.CreateLoanResponse{
		LoanID:       result.LoanID,
		CustomerID:   result.CustomerID,
		LoanApproved: result.Approved,
		Message:      result.Message,
	}
	status := http.StatusOK
	if result.Approved {
		status = http.StatusCreated
		installment := result.MonthlyInstallment.InexactFloat64()
		resp.MonthlyInstallment = &installment
	}
	c.JSON(status, resp)
}

// Details handles GET /api/loans/:loan_id.
func (h *LoanHandler) Details(c *gin.Context) {
	loanID, ok := pathID(c, "loan_id")
	if !ok {
		return
	}

	details, err := h.facade.LoanDetails(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoanDetailsResponse{
		LoanID: details.Loan.ID,
		Customer: dto.CustomerSummary{
			ID:          details.Customer.ID,
			FirstName:   details.Customer.FirstName,
			LastName:    details.Customer.LastName,
			PhoneNumber: details.Customer.PhoneNumber,
			Age:         details.Customer.Age,
		},
		LoanAmount:         details.Loan.LoanAmount.InexactFloat64(),
		InterestRate:       details.Loan.InterestRate.InexactFloat64(),
		MonthlyInstallment: details.Loan.MonthlyPayment.InexactFloat64(),
		Tenure:             details.Loan.Tenure,
	})
}

// List handles GET /api/customers/:customer_id/loans.
func (h *LoanHandler) List(c *gin.Context) {
	customerID, ok := pathID(c, "customer_id")
	if !ok {
		return
	}

	statements, err := h.facade.CustomerLoans(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.LoanStatementResponse, 0, len(statements))
	for _, s := range statements {
		resp = append(resp, toStatementResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

func toStatementResponse(s model.LoanStatement) dto.LoanStatementResponse {
	return dto.LoanStatementResponse{
		LoanID:             s.Loan.ID,
		LoanAmount:         s.Loan.LoanAmount.InexactFloat64(),
		InterestRate:       s.Loan.InterestRate.InexactFloat64(),
		MonthlyInstallment: s.Loan.MonthlyPayment.InexactFloat64(),
		RepaymentsLeft:     s.RepaymentsLeft,
	}
}
