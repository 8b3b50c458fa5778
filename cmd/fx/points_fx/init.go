package points_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"progulka/internal/repositories"
)

var Module = fx.Provide(
	providePointRepo)

func providePointRepo(db *gorm.DB) repositories.PointRepository {
	return repositories.NewPointRepository(db)
}
