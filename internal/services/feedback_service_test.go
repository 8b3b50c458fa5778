package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"progulka/internal/models/db_models"
	"progulka/pkg/utils"
)

func TestAddFeedbackForeignRouteLooksMissing(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepo)
	routeRepo := new(MockRouteRepo)
	service := NewFeedbackService(feedbackRepo, routeRepo)
	userID := uuid.New()

	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(nil, nil)

	rating := 5
	_, err := service.AddFeedback(context.Background(), "r1", userID, &rating, nil)

	assert.ErrorIs(t, err, utils.ErrRouteNotFound)
	feedbackRepo.AssertNotCalled(t, "CreateFeedback", mock.Anything, mock.Anything)
}

func TestAddFeedbackRejectsOutOfRangeRating(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepo)
	routeRepo := new(MockRouteRepo)
	service := NewFeedbackService(feedbackRepo, routeRepo)
	userID := uuid.New()

	route := &db_models.Route{ID: "r1", UserID: &userID, Status: db_models.WalkDone}
	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(route, nil)

	for _, rating := range []int{0, 6, -1} {
		r := rating
		_, err := service.AddFeedback(context.Background(), "r1", userID, &r, nil)
		assert.ErrorIs(t, err, utils.ErrInvalidRating)
	}
	feedbackRepo.AssertNotCalled(t, "CreateFeedback", mock.Anything, mock.Anything)
}

func TestAddFeedbackAppendsRow(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepo)
	routeRepo := new(MockRouteRepo)
	service := NewFeedbackService(feedbackRepo, routeRepo)
	userID := uuid.New()
	rating := 5
	comment := "loved the river section"

	route := &db_models.Route{ID: "r1", UserID: &userID, Status: db_models.WalkDone}
	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(route, nil)
	feedbackRepo.On("CreateFeedback", mock.Anything, mock.MatchedBy(func(feedback *db_models.Feedback) bool {
		return feedback.RouteID == "r1" &&
			feedback.Rating != nil && *feedback.Rating == 5 &&
			feedback.Comment != nil && *feedback.Comment == comment
	})).Return(nil)

	result, err := service.AddFeedback(context.Background(), "r1", userID, &rating, &comment)

	assert.NoError(t, err)
	assert.Equal(t, "r1", result.RouteID)
	assert.Equal(t, 5, *result.Rating)
	feedbackRepo.AssertExpectations(t)
}

func TestAddFeedbackAllowsCommentOnly(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepo)
	routeRepo := new(MockRouteRepo)
	service := NewFeedbackService(feedbackRepo, routeRepo)
	userID := uuid.New()
	comment := "too crowded"

	route := &db_models.Route{ID: "r1", UserID: &userID, Status: db_models.WalkDone}
	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(route, nil)
	feedbackRepo.On("CreateFeedback", mock.Anything, mock.MatchedBy(func(feedback *db_models.Feedback) bool {
		return feedback.Rating == nil && feedback.Comment != nil
	})).Return(nil)

	result, err := service.AddFeedback(context.Background(), "r1", userID, nil, &comment)

	assert.NoError(t, err)
	assert.Nil(t, result.Rating)
}
