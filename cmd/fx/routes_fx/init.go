package routes_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"progulka/internal/repositories"
	"progulka/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo, provideRouteGenerator, provideRouteService)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

// TODO: replace the stub with an LLM-backed generator once prompt templates land.
func provideRouteGenerator() services.RouteGeneratorInterface {
	return services.NewStubRouteGenerator()
}

func provideRouteService(
	routeRepo repositories.RouteRepository,
	pointRepo repositories.PointRepository,
	generator services.RouteGeneratorInterface,
	logger *zap.SugaredLogger,
) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo, pointRepo, generator, logger)
}
