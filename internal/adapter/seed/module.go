package seed

import (
	"go.uber.org/fx"

	"github.com/creditum/creditum/internal/config"
)

// Module exposes the seed source implementation to the fx graph.
var Module = fx.Provide(newSource)

func newSource(cfg *config.Config) Source {
	return NewFileSource(cfg.CustomerSeedFile, cfg.LoanSeedFile)
}
