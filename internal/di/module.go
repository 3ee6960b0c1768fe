package di

import (
	"github.com/mkuznecov/storefront/internal/adapter/notification"
	"github.com/mkuznecov/storefront/internal/app"
	"github.com/mkuznecov/storefront/internal/config"
	"github.com/mkuznecov/storefront/internal/logger"
	"github.com/mkuznecov/storefront/internal/pkg/auth"
	"github.com/mkuznecov/storefront/internal/server/http/handlers"
	"github.com/mkuznecov/storefront/internal/server/http/router"
	"github.com/mkuznecov/storefront/internal/storage/postgres"
	"github.com/mkuznecov/storefront/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notification.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
