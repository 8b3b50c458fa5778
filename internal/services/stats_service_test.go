package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"progulka/internal/models/db_models"
)

func TestBuildUserStatisticsRollsUpRoutes(t *testing.T) {
	statsRepo := new(MockStatsRepo)
	service := NewStatsService(statsRepo)
	userID := uuid.New()

	city := "Moscow"
	lastActivity := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)

	// Two routes: one done for 60 minutes, one going for 90.
	statsRepo.On("CountRoutes", mock.Anything, userID).Return(int64(2), nil)
	statsRepo.On("CountRoutesByStatus", mock.Anything, userID, db_models.WalkDone).Return(int64(1), nil)
	statsRepo.On("CountRoutesByStatus", mock.Anything, userID, db_models.WalkGoing).Return(int64(1), nil)
	statsRepo.On("SumRouteDurations", mock.Anything, userID).Return(int64(150), nil)
	statsRepo.On("SumRouteCosts", mock.Anything, userID).Return(int64(700), nil)
	statsRepo.On("CountDistinctPoints", mock.Anything, userID).Return(int64(5), nil)
	statsRepo.On("FavouriteCity", mock.Anything, userID).Return(&city, nil)
	statsRepo.On("LastRouteCreatedAt", mock.Anything, userID).Return(&lastActivity, nil)

	stats, err := service.BuildUserStatistics(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalRoutes)
	assert.Equal(t, int64(1), stats.CompletedRoutes)
	assert.Equal(t, int64(1), stats.ActiveRoutes)
	assert.Equal(t, int64(150), stats.TotalDurationMinutes)
	assert.Equal(t, 0.0, stats.TotalDistanceKm)
	assert.Equal(t, int64(700), stats.TotalCost)
	assert.Equal(t, int64(5), stats.UniquePlaces)
	assert.Equal(t, "Moscow", *stats.FavouriteCity)
	assert.Equal(t, "2026-05-12T09:30:00Z", *stats.LastActivity)
}

func TestBuildUserStatisticsEmptyHistory(t *testing.T) {
	statsRepo := new(MockStatsRepo)
	service := NewStatsService(statsRepo)
	userID := uuid.New()

	statsRepo.On("CountRoutes", mock.Anything, userID).Return(int64(0), nil)
	statsRepo.On("CountRoutesByStatus", mock.Anything, userID, mock.Anything).Return(int64(0), nil)
	statsRepo.On("SumRouteDurations", mock.Anything, userID).Return(int64(0), nil)
	statsRepo.On("SumRouteCosts", mock.Anything, userID).Return(int64(0), nil)
	statsRepo.On("CountDistinctPoints", mock.Anything, userID).Return(int64(0), nil)
	statsRepo.On("FavouriteCity", mock.Anything, userID).Return(nil, nil)
	statsRepo.On("LastRouteCreatedAt", mock.Anything, userID).Return(nil, nil)

	stats, err := service.BuildUserStatistics(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalRoutes)
	assert.Nil(t, stats.FavouriteCity)
	assert.Nil(t, stats.LastActivity)
}
