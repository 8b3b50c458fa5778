package services

import (
	"context"

	"progulka/internal/models/response_models"
	"progulka/internal/repositories"
	"progulka/pkg/utils"
)

type CatalogServiceInterface interface {
	GetFormData(ctx context.Context) (*response_models.FormDataResponse, error)
	GetCityAreas(ctx context.Context, cityID string) (*response_models.CityAreasResponse, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) GetFormData(ctx context.Context) (*response_models.FormDataResponse, error) {
	cities, err := s.catalogRepo.ListCities(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	interests, err := s.catalogRepo.ListInterests(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	moods, err := s.catalogRepo.ListMoods(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.FormDataResponse{
		Cities:    make([]response_models.CityResponse, 0, len(cities)),
		Interests: make([]response_models.InterestResponse, 0, len(interests)),
		Moods:     make([]response_models.MoodResponse, 0, len(moods)),
	}
	for _, city := range cities {
		out.Cities = append(out.Cities, response_models.CityResponse{
			ID:          city.ID,
			Name:        city.Name,
			ImageURL:    city.ImageURL,
			Description: city.Description,
		})
	}
	for _, interest := range interests {
		out.Interests = append(out.Interests, response_models.InterestResponse{
			ID:          interest.ID,
			Label:       interest.Label,
			Description: interest.Description,
		})
	}
	for _, mood := range moods {
		out.Moods = append(out.Moods, response_models.MoodResponse{
			ID:          mood.ID,
			Label:       mood.Label,
			Description: mood.Description,
		})
	}
	return out, nil
}

func (s *CatalogService) GetCityAreas(ctx context.Context, cityID string) (*response_models.CityAreasResponse, error) {
	city, err := s.catalogRepo.GetCityByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	areas, err := s.catalogRepo.ListAreasByCity(ctx, city.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.CityAreasResponse{
		City:  response_models.CityRef{ID: city.ID, Name: city.Name},
		Areas: make([]response_models.CityAreaResponse, 0, len(areas)),
	}
	for _, area := range areas {
		out.Areas = append(out.Areas, response_models.CityAreaResponse{
			Name:        area.Name,
			Description: area.Description,
			ImageURL:    area.ImageURL,
		})
	}
	return out, nil
}
