package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"progulka/internal/models/db_models"
)

type StatsRepository interface {
	CountRoutes(ctx context.Context, userID uuid.UUID) (int64, error)
	CountRoutesByStatus(ctx context.Context, userID uuid.UUID, status db_models.WalkStatus) (int64, error)
	SumRouteDurations(ctx context.Context, userID uuid.UUID) (int64, error)
	SumRouteCosts(ctx context.Context, userID uuid.UUID) (int64, error)
	CountDistinctPoints(ctx context.Context, userID uuid.UUID) (int64, error)
	FavouriteCity(ctx context.Context, userID uuid.UUID) (*string, error)
	LastRouteCreatedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRoutes(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountRoutesByStatus(ctx context.Context, userID uuid.UUID, status db_models.WalkStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) SumRouteDurations(ctx context.Context, userID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Select("COALESCE(SUM(total_duration), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) SumRouteCosts(ctx context.Context, userID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}

// CountDistinctPoints expands every owned route's point_sequence and counts
// distinct point ids across them.
func (r *statsRepository) CountDistinctPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	query := `
        SELECT COUNT(DISTINCT elem)
        FROM routes r, jsonb_array_elements_text(r.point_sequence::jsonb) AS elem
        WHERE r.user_id = ?
    `
	err := r.db.WithContext(ctx).Raw(query, userID).Scan(&n).Error
	return n, err
}

// FavouriteCity picks the city with the most routes for the user; equal counts
// resolve to the lexicographically smallest city name.
func (r *statsRepository) FavouriteCity(ctx context.Context, userID uuid.UUID) (*string, error) {
	var name *string
	query := `
        SELECT c.name
        FROM routes r
        JOIN cities c ON c.id = r.city_id
        WHERE r.user_id = ?
        GROUP BY c.name
        ORDER BY COUNT(*) DESC, c.name ASC
        LIMIT 1
    `
	err := r.db.WithContext(ctx).Raw(query, userID).Scan(&name).Error
	return name, err
}

func (r *statsRepository) LastRouteCreatedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var last *time.Time
	err := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Select("MAX(created_at)").
		Where("user_id = ?", userID).
		Scan(&last).Error
	return last, err
}
