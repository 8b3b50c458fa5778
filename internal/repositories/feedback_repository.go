package repositories

import (
	"context"

	"gorm.io/gorm"
	"progulka/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListByRoute(ctx context.Context, routeID string) ([]db_models.Feedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) ListByRoute(ctx context.Context, routeID string) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
