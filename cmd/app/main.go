package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"progulka/cmd/fx/account_fx"
	"progulka/cmd/fx/catalog_fx"
	"progulka/cmd/fx/controllers_fx"
	"progulka/cmd/fx/db_fx"
	"progulka/cmd/fx/embedding_fx"
	"progulka/cmd/fx/feedback_fx"
	"progulka/cmd/fx/logger_fx"
	"progulka/cmd/fx/points_fx"
	"progulka/cmd/fx/routes_fx"
	"progulka/cmd/fx/stats_fx"
	"progulka/internal/api/controllers"
	"progulka/internal/infra"
	"progulka/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		points_fx.Module,
		embedding_fx.Module,
		routes_fx.Module,
		feedback_fx.Module,
		stats_fx.Module,
		catalog_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB, logger *zap.SugaredLogger) {
	if err := infra.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Infof("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					logger.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	routesController *controllers.RoutesController,
	feedbackController *controllers.FeedbackController,
	usersController *controllers.UsersController,
	embeddingsController *controllers.EmbeddingsController,
	catalogController *controllers.CatalogController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		routesController,
		feedbackController,
		usersController,
		embeddingsController,
		catalogController,
		accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	routesController *controllers.RoutesController,
	feedbackController *controllers.FeedbackController,
	usersController *controllers.UsersController,
	embeddingsController *controllers.EmbeddingsController,
	catalogController *controllers.CatalogController,
	accountController *controllers.AccountController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.POST("/refresh", accountController.Refresh)
	accountGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	routesGroup := r.Group("/routes")
	routesGroup.GET("/form", catalogController.GetFormData)
	routesGroup.GET("/area", catalogController.GetCityAreas)
	routesGroup.Use(middleware.JWTAuthMiddleware())
	routesGroup.POST("/generate", routesController.GenerateRoute)
	routesGroup.POST("/edit-status", routesController.EditRouteStatus)
	routesGroup.POST("/cancel", routesController.CancelRoute)
	routesGroup.GET("/show/:routeId", routesController.GetRouteDetail)
	routesGroup.POST("/feedback", feedbackController.AddFeedback)

	usersGroup := r.Group("/users")
	usersGroup.Use(middleware.JWTAuthMiddleware())
	usersGroup.GET("/routes", usersController.ListUserRoutes)
	usersGroup.GET("/statistics", usersController.GetUserStatistics)

	pointsGroup := r.Group("/points")
	pointsGroup.Use(middleware.JWTAuthMiddleware())
	pointsGroup.POST("/search", embeddingsController.SearchPoints)

	embeddingsGroup := r.Group("/embeddings")
	embeddingsGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	embeddingsGroup.POST("/embed-missing", embeddingsController.EmbedMissing)
	embeddingsGroup.POST("/embed-refresh", embeddingsController.EmbedRefresh)
	embeddingsGroup.POST("/embed-update/:pointId", embeddingsController.EmbedUpdatePoint)
}
