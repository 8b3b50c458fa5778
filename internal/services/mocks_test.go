package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"

	"progulka/internal/models/db_models"
	"progulka/internal/models/response_models"
	"progulka/internal/repositories"
)

// MockPointRepo is a mock implementation of repositories.PointRepository
type MockPointRepo struct {
	mock.Mock
}

func (m *MockPointRepo) GetByID(ctx context.Context, id string) (*db_models.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Point), args.Error(1)
}

func (m *MockPointRepo) ListAll(ctx context.Context) ([]db_models.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Point), args.Error(1)
}

func (m *MockPointRepo) ListMissingEmbedding(ctx context.Context) ([]db_models.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Point), args.Error(1)
}

func (m *MockPointRepo) ListByIDs(ctx context.Context, ids []string) ([]db_models.Point, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Point), args.Error(1)
}

// MockEmbeddingRepo is a mock implementation of repositories.PointEmbeddingRepository
type MockEmbeddingRepo struct {
	mock.Mock
}

func (m *MockEmbeddingRepo) Create(ctx context.Context, embedding *db_models.PointEmbedding) error {
	args := m.Called(ctx, embedding)
	return args.Error(0)
}

func (m *MockEmbeddingRepo) Upsert(ctx context.Context, embedding *db_models.PointEmbedding) error {
	args := m.Called(ctx, embedding)
	return args.Error(0)
}

func (m *MockEmbeddingRepo) UpsertAll(ctx context.Context, embeddings []db_models.PointEmbedding) error {
	args := m.Called(ctx, embeddings)
	return args.Error(0)
}

func (m *MockEmbeddingRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]repositories.SimilarPointRow, error) {
	args := m.Called(ctx, vector, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.SimilarPointRow), args.Error(1)
}

// MockEmbeddingClient is a mock implementation of utils.EmbeddingClientInterface
type MockEmbeddingClient struct {
	mock.Mock
}

func (m *MockEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

// MockRouteRepo is a mock implementation of repositories.RouteRepository
type MockRouteRepo struct {
	mock.Mock
}

func (m *MockRouteRepo) Create(ctx context.Context, route *db_models.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepo) GetByIDForUser(ctx context.Context, routeID string, userID uuid.UUID) (*db_models.Route, error) {
	args := m.Called(ctx, routeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Route), args.Error(1)
}

func (m *MockRouteRepo) UpdateStatus(ctx context.Context, routeID string, status db_models.WalkStatus) error {
	args := m.Called(ctx, routeID, status)
	return args.Error(0)
}

func (m *MockRouteRepo) CancelWithFeedback(ctx context.Context, routeID string, userID uuid.UUID, reason *string) error {
	args := m.Called(ctx, routeID, userID, reason)
	return args.Error(0)
}

func (m *MockRouteRepo) ListByUser(ctx context.Context, userID uuid.UUID, status *db_models.WalkStatus, limit, offset int) ([]db_models.Route, error) {
	args := m.Called(ctx, userID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Route), args.Error(1)
}

// MockRouteGenerator is a mock implementation of RouteGeneratorInterface
type MockRouteGenerator struct {
	mock.Mock
}

func (m *MockRouteGenerator) Generate(ctx context.Context, input GenerateRouteInput) (*response_models.GeneratedRoute, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.GeneratedRoute), args.Error(1)
}

// MockFeedbackRepo is a mock implementation of repositories.FeedbackRepositoryInterface
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepo) ListByRoute(ctx context.Context, routeID string) ([]db_models.Feedback, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Feedback), args.Error(1)
}

// MockStatsRepo is a mock implementation of repositories.StatsRepository
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountRoutes(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountRoutesByStatus(ctx context.Context, userID uuid.UUID, status db_models.WalkStatus) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) SumRouteDurations(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) SumRouteCosts(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountDistinctPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) FavouriteCity(ctx context.Context, userID uuid.UUID) (*string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockStatsRepo) LastRouteCreatedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}
