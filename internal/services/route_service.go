package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"progulka/internal/models/db_models"
	"progulka/internal/models/request_models"
	"progulka/internal/models/response_models"
	"progulka/internal/repositories"
	"progulka/pkg/utils"
)

type RouteServiceInterface interface {
	GenerateRoute(ctx context.Context, req request_models.GenerateRouteRequest, userID uuid.UUID) (*response_models.GeneratedRoute, error)
	ChangeStatus(ctx context.Context, routeID, status string, userID uuid.UUID) (*response_models.RouteStatusResponse, error)
	CancelRoute(ctx context.Context, routeID string, reason *string, userID uuid.UUID) (*response_models.CancelRouteResponse, error)
	GetRouteDetail(ctx context.Context, routeID string, userID uuid.UUID) (*response_models.RouteDetailResponse, error)
	ListUserRoutes(ctx context.Context, userID uuid.UUID, status *string, limit, offset int) ([]response_models.RouteSummary, error)
}

type RouteService struct {
	routeRepo repositories.RouteRepository
	pointRepo repositories.PointRepository
	generator RouteGeneratorInterface
	logger    *zap.SugaredLogger
}

func NewRouteService(
	routeRepo repositories.RouteRepository,
	pointRepo repositories.PointRepository,
	generator RouteGeneratorInterface,
	logger *zap.SugaredLogger,
) RouteServiceInterface {
	return &RouteService{
		routeRepo: routeRepo,
		pointRepo: pointRepo,
		generator: generator,
		logger:    logger,
	}
}

func (s *RouteService) GenerateRoute(ctx context.Context, req request_models.GenerateRouteRequest, userID uuid.UUID) (*response_models.GeneratedRoute, error) {
	// Re-validated here even though the HTTP layer binds these as required.
	if req.CityID == "" || req.DurationMinutes <= 0 {
		return nil, utils.ErrInvalidInput
	}

	generated, err := s.generator.Generate(ctx, GenerateRouteInput{
		CityID:          req.CityID,
		TimeOfDay:       req.TimeOfDay,
		Interests:       req.Interests,
		Mood:            req.Mood,
		Budget:          req.Budget,
		Transport:       req.Transport,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		UserID:          &userID,
	})
	if err != nil {
		s.logger.Errorw("route generation failed", "city_id", req.CityID, "err", err)
		return nil, utils.ErrGenerationFailed
	}

	if generated.RouteID == "" {
		return nil, fmt.Errorf("%w: generator returned no route id", utils.ErrGenerationFailed)
	}
	sequence := make([]string, 0, len(generated.Points))
	for _, point := range generated.Points {
		if point.ID == "" {
			return nil, fmt.Errorf("%w: generator returned a point without an id", utils.ErrGenerationFailed)
		}
		sequence = append(sequence, point.ID)
	}

	route := db_models.Route{
		ID:            generated.RouteID,
		TotalDuration: req.DurationMinutes,
		TotalCost:     req.Budget,
		CityID:        &req.CityID,
		UserID:        &userID,
		PointSequence: sequence,
		Status:        db_models.WalkGoing,
	}
	if req.Description != "" {
		route.Description = &req.Description
	}

	if err := s.routeRepo.Create(ctx, &route); err != nil {
		s.logger.Errorw("failed to persist generated route", "route_id", generated.RouteID, "err", err)
		return nil, utils.ErrDatabaseError
	}

	id := userID.String()
	generated.UserID = &id
	return generated, nil
}

func (s *RouteService) ChangeStatus(ctx context.Context, routeID, status string, userID uuid.UUID) (*response_models.RouteStatusResponse, error) {
	newStatus := db_models.WalkStatus(status)
	if !newStatus.Valid() {
		return nil, utils.ErrInvalidStatus
	}

	route, err := s.routeRepo.GetByIDForUser(ctx, routeID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}

	if err := s.routeRepo.UpdateStatus(ctx, route.ID, newStatus); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// The route row keeps no updated_at column; the timestamp reported here
	// is generated per call.
	return &response_models.RouteStatusResponse{
		RouteID:   route.ID,
		NewStatus: string(newStatus),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *RouteService) CancelRoute(ctx context.Context, routeID string, reason *string, userID uuid.UUID) (*response_models.CancelRouteResponse, error) {
	route, err := s.routeRepo.GetByIDForUser(ctx, routeID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}

	if err := s.routeRepo.CancelWithFeedback(ctx, route.ID, userID, reason); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CancelRouteResponse{
		RouteID:      route.ID,
		Status:       string(db_models.WalkCancelled),
		CancelReason: reason,
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *RouteService) GetRouteDetail(ctx context.Context, routeID string, userID uuid.UUID) (*response_models.RouteDetailResponse, error) {
	route, err := s.routeRepo.GetByIDForUser(ctx, routeID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}

	points, err := s.pointRepo.ListByIDs(ctx, route.PointSet())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	routePoints := make([]response_models.RoutePoint, 0, len(points))
	for _, point := range points {
		routePoints = append(routePoints, response_models.RoutePoint{
			ID:          point.ID,
			Name:        point.Name,
			Description: point.Description,
			ImageURL:    point.ImageURL,
			Coordinates: response_models.Coordinates{
				Lat: point.CoordinatesLat,
				Lng: point.CoordinatesLng,
			},
		})
	}

	var ownerID *string
	if route.UserID != nil {
		id := route.UserID.String()
		ownerID = &id
	}

	return &response_models.RouteDetailResponse{
		RouteID:       route.ID,
		UserID:        ownerID,
		Description:   route.Description,
		TotalDuration: route.TotalDuration,
		TotalCost:     route.TotalCost,
		Status:        string(route.Status),
		PointSequence: route.PointSequence,
		Points:        routePoints,
		CreatedAt:     route.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *RouteService) ListUserRoutes(ctx context.Context, userID uuid.UUID, status *string, limit, offset int) ([]response_models.RouteSummary, error) {
	var statusFilter *db_models.WalkStatus
	if status != nil && *status != "" {
		walkStatus := db_models.WalkStatus(*status)
		if !walkStatus.Valid() {
			return nil, utils.ErrInvalidStatus
		}
		statusFilter = &walkStatus
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	routes, err := s.routeRepo.ListByUser(ctx, userID, statusFilter, limit, offset)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RouteSummary, 0, len(routes))
	for _, route := range routes {
		out = append(out, response_models.RouteSummary{
			RouteID:       route.ID,
			Description:   route.Description,
			TotalDuration: route.TotalDuration,
			TotalCost:     route.TotalCost,
			Status:        string(route.Status),
			CreatedAt:     route.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}
