package services

import (
	"context"

	"github.com/google/uuid"
	"progulka/internal/models/response_models"
)

type GenerateRouteInput struct {
	CityID          string
	TimeOfDay       string
	Interests       []string
	Mood            []string
	Budget          *int
	Transport       string
	DurationMinutes int
	Description     string
	UserID          *uuid.UUID
}

// RouteGeneratorInterface is the capability that turns a request into an
// ordered list of points. The ML implementation lives elsewhere; the stub
// below stands in for it.
type RouteGeneratorInterface interface {
	Generate(ctx context.Context, input GenerateRouteInput) (*response_models.GeneratedRoute, error)
}

type StubRouteGenerator struct{}

func NewStubRouteGenerator() RouteGeneratorInterface {
	return &StubRouteGenerator{}
}

func (g *StubRouteGenerator) Generate(ctx context.Context, input GenerateRouteInput) (*response_models.GeneratedRoute, error) {
	var userID *string
	if input.UserID != nil {
		s := input.UserID.String()
		userID = &s
	}

	return &response_models.GeneratedRoute{
		RouteID: uuid.New().String()[:8],
		UserID:  userID,
		MapURL:  "https://yandex.ru/maps/?text=" + input.CityID,
		Points: []response_models.GeneratedPoint{
			{
				ID:          "1",
				Name:        "Парк Горького",
				Description: "Один из самых популярных парков города — идеально для прогулки вечером.",
				ImageURL:    "https://example.com/gorky.jpg",
				VisitTime:   "30 мин",
				Tags:        []string{"🌳", "💸 0 ₽", "🚶 10 мин"},
				Coordinates: response_models.Coordinates{Lat: 55.792, Lng: 37.586},
			},
			{
				ID:          "2",
				Name:        "ВкусОчка",
				Description: "Элитный ресторан Москвы",
				ImageURL:    "https://example.com/gorky.jpg",
				VisitTime:   "30 мин",
				Tags:        []string{"🌳", "💸 1 ₽", "🚶 10 мин"},
				Coordinates: response_models.Coordinates{Lat: 55.792, Lng: 37.586},
			},
		},
	}, nil
}
