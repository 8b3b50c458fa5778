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

type StatsServiceInterface interface {
	BuildUserStatistics(ctx context.Context, userID uuid.UUID) (*response_models.UserStatistics, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) BuildUserStatistics(ctx context.Context, userID uuid.UUID) (*response_models.UserStatistics, error) {
	total, err := s.statsRepo.CountRoutes(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	completed, err := s.statsRepo.CountRoutesByStatus(ctx, userID, db_models.WalkDone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	active, err := s.statsRepo.CountRoutesByStatus(ctx, userID, db_models.WalkGoing)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalDuration, err := s.statsRepo.SumRouteDurations(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalCost, err := s.statsRepo.SumRouteCosts(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	uniquePlaces, err := s.statsRepo.CountDistinctPoints(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	favouriteCity, err := s.statsRepo.FavouriteCity(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	lastActivity, err := s.statsRepo.LastRouteCreatedAt(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var lastActivityStr *string
	if lastActivity != nil {
		formatted := lastActivity.UTC().Format(time.RFC3339)
		lastActivityStr = &formatted
	}

	return &response_models.UserStatistics{
		TotalRoutes:          total,
		CompletedRoutes:      completed,
		ActiveRoutes:         active,
		TotalDurationMinutes: totalDuration,
		TotalDistanceKm:      0.0, // distance-by-coordinates not computed yet
		TotalCost:            totalCost,
		UniquePlaces:         uniquePlaces,
		FavouriteCity:        favouriteCity,
		LastActivity:         lastActivityStr,
	}, nil
}
