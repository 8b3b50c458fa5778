package controllers_fx

import (
	"go.uber.org/fx"
	"progulka/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRoutesController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewEmbeddingsController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewAccountController))
