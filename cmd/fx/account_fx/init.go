package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"progulka/internal/repositories"
	"progulka/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, logger *zap.SugaredLogger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, logger)
}
