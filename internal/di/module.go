package di

import (
	"go.uber.org/fx"

	"github.com/creditum/creditum/internal/adapter/cache"
	"github.com/creditum/creditum/internal/adapter/seed"
	"github.com/creditum/creditum/internal/app"
	"github.com/creditum/creditum/internal/config"
	"github.com/creditum/creditum/internal/logger"
	"github.com/creditum/creditum/internal/server/http/handlers"
	"github.com/creditum/creditum/internal/server/http/router"
	"github.com/creditum/creditum/internal/storage/postgres"
	"github.com/creditum/creditum/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		seed.Module,
		cache.Module,
		usecase.Module,
		fx.Provide(func(facade *app.CreditFacade) handlers.CreditFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
