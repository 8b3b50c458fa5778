package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"progulka/internal/models/db_models"
	"progulka/internal/models/response_models"
	"progulka/internal/repositories"
	"progulka/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, routeID string, userID uuid.UUID, rating *int, comment *string) (*response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	routeRepo    repositories.RouteRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	routeRepo repositories.RouteRepository,
) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		routeRepo:    routeRepo,
	}
}

// AddFeedback appends a feedback row to the caller's route. Earlier rows are
// never touched.
func (s *FeedbackService) AddFeedback(ctx context.Context, routeID string, userID uuid.UUID, rating *int, comment *string) (*response_models.FeedbackResponse, error) {
	route, err := s.routeRepo.GetByIDForUser(ctx, routeID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}

	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, utils.ErrInvalidRating
	}

	feedback := db_models.Feedback{
		RouteID: route.ID,
		UserID:  &userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, &feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	id := userID.String()
	return &response_models.FeedbackResponse{
		RouteID:   route.ID,
		UserID:    &id,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}
