package repository

import (
	"context"

	"github.com/creditum/creditum/internal/domain/model"
)

// SeedRepository loads historical data exactly once. Both operations are
// no-ops when the target table already holds rows, and silently skip
// duplicate primary keys.
type SeedRepository interface {
	SeedCustomers(ctx context.Context, customers []model.Customer) (int, error)
	SeedLoans(ctx context.Context, loans []model.Loan) (int, error)
}
