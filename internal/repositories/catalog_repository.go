package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"progulka/internal/models/db_models"
)

type CatalogRepository interface {
	ListCities(ctx context.Context) ([]db_models.City, error)
	ListInterests(ctx context.Context) ([]db_models.Interest, error)
	ListMoods(ctx context.Context) ([]db_models.Mood, error)
	GetCityByID(ctx context.Context, cityID string) (*db_models.City, error)
	ListAreasByCity(ctx context.Context, cityID string) ([]db_models.CityArea, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCities(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	err := r.db.WithContext(ctx).Order("name").Find(&cities).Error
	return cities, err
}

func (r *catalogRepository) ListInterests(ctx context.Context) ([]db_models.Interest, error) {
	var interests []db_models.Interest
	err := r.db.WithContext(ctx).Order("id").Find(&interests).Error
	return interests, err
}

func (r *catalogRepository) ListMoods(ctx context.Context) ([]db_models.Mood, error) {
	var moods []db_models.Mood
	err := r.db.WithContext(ctx).Order("id").Find(&moods).Error
	return moods, err
}

func (r *catalogRepository) GetCityByID(ctx context.Context, cityID string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", cityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *catalogRepository) ListAreasByCity(ctx context.Context, cityID string) ([]db_models.CityArea, error) {
	var areas []db_models.CityArea
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("name").
		Find(&areas).Error
	return areas, err
}
