package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/creditum/creditum/internal/server/http/dto"
)

// CustomerHandler processes customer registration.
type CustomerHandler struct {
	facade RegistrationFacade
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade RegistrationFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.Register(c.Request.Context(),
		req.FirstName, req.LastName, req.Age, req.PhoneNumber,
		decimal.NewFromFloat(req.MonthlySalary))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		CustomerID:    customer.ID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Age:           customer.Age,
		PhoneNumber:   customer.PhoneNumber,
		MonthlySalary: customer.MonthlySalary.InexactFloat64(),
		ApprovedLimit: customer.ApprovedLimit.InexactFloat64(),
	})
}
