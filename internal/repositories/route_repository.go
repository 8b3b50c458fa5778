package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"progulka/internal/models/db_models"
)

type RouteRepository interface {
	Create(ctx context.Context, route *db_models.Route) error
	// GetByIDForUser is the single ownership-and-lookup helper shared by every
	// route-scoped operation: a route owned by someone else behaves exactly
	// like a route that does not exist.
	GetByIDForUser(ctx context.Context, routeID string, userID uuid.UUID) (*db_models.Route, error)
	UpdateStatus(ctx context.Context, routeID string, status db_models.WalkStatus) error
	CancelWithFeedback(ctx context.Context, routeID string, userID uuid.UUID, reason *string) error
	ListByUser(ctx context.Context, userID uuid.UUID, status *db_models.WalkStatus, limit, offset int) ([]db_models.Route, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) Create(ctx context.Context, route *db_models.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *routeRepository) GetByIDForUser(ctx context.Context, routeID string, userID uuid.UUID) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", routeID, userID).
		First(&route).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) UpdateStatus(ctx context.Context, routeID string, status db_models.WalkStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("id = ?", routeID).
		Update("status", status).Error
}

func (r *routeRepository) CancelWithFeedback(ctx context.Context, routeID string, userID uuid.UUID, reason *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Route{}).
			Where("id = ?", routeID).
			Update("status", db_models.WalkCancelled).Error; err != nil {
			return err
		}

		feedback := db_models.Feedback{
			RouteID: routeID,
			UserID:  &userID,
			Comment: reason,
		}
		return tx.Create(&feedback).Error
	})
}

func (r *routeRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *db_models.WalkStatus, limit, offset int) ([]db_models.Route, error) {
	var routes []db_models.Route

	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if status != nil {
		tx = tx.Where("status = ?", *status)
	}

	err := tx.Limit(limit).Offset(offset).Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}
