package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"progulka/internal/models/db_models"
)

type PointRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Point, error)
	ListAll(ctx context.Context) ([]db_models.Point, error)
	ListMissingEmbedding(ctx context.Context) ([]db_models.Point, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.Point, error)
}

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) GetByID(ctx context.Context, id string) (*db_models.Point, error) {
	var point db_models.Point
	err := r.db.WithContext(ctx).
		Preload("Interests").
		Preload("Moods").
		First(&point, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

func (r *pointRepository) ListAll(ctx context.Context) ([]db_models.Point, error) {
	var points []db_models.Point
	err := r.db.WithContext(ctx).
		Preload("Interests").
		Preload("Moods").
		Order("id").
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *pointRepository) ListMissingEmbedding(ctx context.Context) ([]db_models.Point, error) {
	var points []db_models.Point
	err := r.db.WithContext(ctx).
		Preload("Interests").
		Preload("Moods").
		Joins("LEFT JOIN point_embeddings ON point_embeddings.point_id = points.id").
		Where("point_embeddings.point_id IS NULL").
		Order("points.id").
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *pointRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.Point, error) {
	if len(ids) == 0 {
		return []db_models.Point{}, nil
	}
	var points []db_models.Point
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
