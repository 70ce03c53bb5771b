package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/creditum/creditum/internal/server/http/handlers"
	"github.com/creditum/creditum/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CreditFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	customerHandler := handlers.NewCustomerHandler(facade)
	loanHandler := handlers.NewLoanHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", customerHandler.Register)
	api.POST("/check-eligibility", loanHandler.CheckEligibility)
	api.POST("/create-loan", loanHandler.Create)
	api.GET("/loans/:loan_id", loanHandler.Details)
	api.GET("/customers/:customer_id/loans", loanHandler.List)

	return engine
}
