//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"wadboard/internal"
	"wadboard/internal/controllers"
	"wadboard/internal/monitor"
	"wadboard/internal/providers"
	"wadboard/internal/services"
	"wadboard/internal/session"
	"wadboard/internal/storage"
	"wadboard/internal/structures"
	"wadboard/internal/wol"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewFileManager,
		wire.Bind(new(services.Persister), new(*storage.FileManager)),
		wire.Bind(new(monitor.Loader), new(*storage.FileManager)),
		services.NewDashboardService,

		session.NewManager,
		wire.Bind(new(session.ManagerInterface), new(*session.Manager)),
		wire.Bind(new(monitor.SessionCleaner), new(*session.Manager)),
		session.NewCookieCodec,

		monitor.NewProber,
		wire.Bind(new(monitor.ProberInterface), new(*monitor.Prober)),
		monitor.NewScheduler,
		wol.NewExecutor,

		controllers.NewAuthController,
		controllers.NewApiController,
		controllers.NewHealthController,
		controllers.NewFrontendController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
