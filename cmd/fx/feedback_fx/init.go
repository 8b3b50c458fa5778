package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"progulka/internal/repositories"
	"progulka/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	routeRepo repositories.RouteRepository,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, routeRepo)
}
