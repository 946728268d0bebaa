package di

import (
	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/adapter/identity"
	"github.com/jokistudio/portal/internal/adapter/objectstore"
	"github.com/jokistudio/portal/internal/app"
	"github.com/jokistudio/portal/internal/config"
	"github.com/jokistudio/portal/internal/logger"
	"github.com/jokistudio/portal/internal/notify"
	"github.com/jokistudio/portal/internal/pkg/auth"
	"github.com/jokistudio/portal/internal/server/http/router"
	"github.com/jokistudio/portal/internal/storage/postgres"
	"github.com/jokistudio/portal/internal/storage/rediscache"
	"github.com/jokistudio/portal/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		rediscache.Module,
		objectstore.Module,
		identity.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
