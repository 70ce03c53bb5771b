package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/server/http/dto"
)

// pathID parses a positive integer path parameter, answering 400 itself
// when the value is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps domain sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "customer not found"})
	case errors.Is(err, domainErrors.ErrLoanNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "loan not found"})
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "invalid input"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "already exists"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
