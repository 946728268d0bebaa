package router

import (
	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/app"
	"github.com/jokistudio/portal/internal/server/http/handlers"
	"github.com/jokistudio/portal/internal/server/http/middleware"
	"github.com/jokistudio/portal/internal/storage/postgres"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(f *app.PortalFacade) handlers.PortalFacade { return f },
		func(f *app.PortalFacade) middleware.AccessGate { return f },
		func(s *postgres.Storage) HealthChecker { return s },
		Setup,
	),
)
