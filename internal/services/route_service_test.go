package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"progulka/internal/models/db_models"
	"progulka/internal/models/request_models"
	"progulka/internal/models/response_models"
	"progulka/pkg/utils"
)

func newRouteServiceForTest(
	routeRepo *MockRouteRepo,
	pointRepo *MockPointRepo,
	generator *MockRouteGenerator,
) RouteServiceInterface {
	return NewRouteService(routeRepo, pointRepo, generator, zap.NewNop().Sugar())
}

func TestGenerateRouteRejectsInvalidInput(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()

	tests := []struct {
		name string
		req  request_models.GenerateRouteRequest
	}{
		{name: "missing city", req: request_models.GenerateRouteRequest{DurationMinutes: 60}},
		{name: "zero duration", req: request_models.GenerateRouteRequest{CityID: "moscow"}},
		{name: "negative duration", req: request_models.GenerateRouteRequest{CityID: "moscow", DurationMinutes: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GenerateRoute(context.Background(), tt.req, userID)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateRoutePersistsSequence(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()

	generator.On("Generate", mock.Anything, mock.Anything).Return(&response_models.GeneratedRoute{
		RouteID: "abc12345",
		MapURL:  "https://yandex.ru/maps/?text=moscow",
		Points: []response_models.GeneratedPoint{
			{ID: "p1", Name: "First"},
			{ID: "p2", Name: "Second"},
			{ID: "p1", Name: "First"},
		},
	}, nil)
	routeRepo.On("Create", mock.Anything, mock.MatchedBy(func(route *db_models.Route) bool {
		return route.ID == "abc12345" &&
			route.Status == db_models.WalkGoing &&
			len(route.PointSequence) == 3 &&
			route.PointSequence[0] == "p1" &&
			route.PointSequence[2] == "p1"
	})).Return(nil)

	result, err := service.GenerateRoute(context.Background(), request_models.GenerateRouteRequest{
		CityID:          "moscow",
		DurationMinutes: 90,
	}, userID)

	assert.NoError(t, err)
	assert.Equal(t, "abc12345", result.RouteID)
	assert.Equal(t, userID.String(), *result.UserID)
	routeRepo.AssertExpectations(t)
}

func TestGenerateRouteMapsGeneratorFailure(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)

	generator.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("model timeout"))

	_, err := service.GenerateRoute(context.Background(), request_models.GenerateRouteRequest{
		CityID:          "moscow",
		DurationMinutes: 60,
	}, uuid.New())

	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	routeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChangeStatusValidatesBeforeLookup(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)

	_, err := service.ChangeStatus(context.Background(), "r1", "paused", uuid.New())

	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
	routeRepo.AssertNotCalled(t, "GetByIDForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatusForeignRouteLooksMissing(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()

	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(nil, nil)

	_, err := service.ChangeStatus(context.Background(), "r1", "done", userID)

	assert.ErrorIs(t, err, utils.ErrRouteNotFound)
	routeRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeStatusUpdates(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()

	route := &db_models.Route{ID: "r1", UserID: &userID, Status: db_models.WalkGoing}
	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(route, nil)
	routeRepo.On("UpdateStatus", mock.Anything, "r1", db_models.WalkDone).Return(nil)

	result, err := service.ChangeStatus(context.Background(), "r1", "done", userID)

	assert.NoError(t, err)
	assert.Equal(t, "r1", result.RouteID)
	assert.Equal(t, "done", result.NewStatus)
	assert.NotEmpty(t, result.UpdatedAt)
}

func TestCancelRouteRecordsReason(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()
	reason := "rain"

	route := &db_models.Route{ID: "r1", UserID: &userID, Status: db_models.WalkGoing}
	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(route, nil)
	routeRepo.On("CancelWithFeedback", mock.Anything, "r1", userID, &reason).Return(nil)

	result, err := service.CancelRoute(context.Background(), "r1", &reason, userID)

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
	assert.Equal(t, &reason, result.CancelReason)
	routeRepo.AssertExpectations(t)
}

func TestGetRouteDetailExpandsDistinctPoints(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()

	route := &db_models.Route{
		ID:            "r1",
		UserID:        &userID,
		Status:        db_models.WalkGoing,
		PointSequence: []string{"p1", "p2", "p1"},
	}
	routeRepo.On("GetByIDForUser", mock.Anything, "r1", userID).Return(route, nil)
	// The membership set collapses the revisit; the sequence keeps it.
	pointRepo.On("ListByIDs", mock.Anything, []string{"p1", "p2"}).Return([]db_models.Point{
		{ID: "p1", Name: "First"},
		{ID: "p2", Name: "Second"},
	}, nil)

	result, err := service.GetRouteDetail(context.Background(), "r1", userID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p1"}, []string(result.PointSequence))
	assert.Len(t, result.Points, 2)
}

func TestListUserRoutesRejectsUnknownStatusFilter(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	status := "archived"

	_, err := service.ListUserRoutes(context.Background(), uuid.New(), &status, 20, 0)

	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
	routeRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListUserRoutesAppliesDefaultLimit(t *testing.T) {
	routeRepo := new(MockRouteRepo)
	pointRepo := new(MockPointRepo)
	generator := new(MockRouteGenerator)
	service := newRouteServiceForTest(routeRepo, pointRepo, generator)
	userID := uuid.New()

	routeRepo.On("ListByUser", mock.Anything, userID, (*db_models.WalkStatus)(nil), 20, 0).
		Return([]db_models.Route{{ID: "r1", Status: db_models.WalkGoing}}, nil)

	result, err := service.ListUserRoutes(context.Background(), userID, nil, 0, -3)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	routeRepo.AssertExpectations(t)
}
