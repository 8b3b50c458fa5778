package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"progulka/internal/repositories"
	"progulka/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}
