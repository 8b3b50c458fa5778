package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"progulka/internal/models/db_models"
	"progulka/internal/models/response_models"
	"progulka/internal/repositories"
	"progulka/pkg/utils"
)

type EmbeddingServiceInterface interface {
	// EmbedMissingPoints embeds only the points without a vector. Each create
	// commits on its own, so a failure keeps everything embedded so far.
	EmbedMissingPoints(ctx context.Context) (int, error)
	// RefreshAllEmbeddings re-embeds every point and replaces the whole set in
	// one transaction; a failure anywhere leaves the store untouched.
	RefreshAllEmbeddings(ctx context.Context) (int, error)
	UpdatePointEmbedding(ctx context.Context, pointID string) (string, error)
	SearchSimilarPoints(ctx context.Context, query string, limit int) ([]response_models.SimilarPoint, error)
}

type EmbeddingService struct {
	pointRepo     repositories.PointRepository
	embeddingRepo repositories.PointEmbeddingRepository
	client        utils.EmbeddingClientInterface
	logger        *zap.SugaredLogger
}

func NewEmbeddingService(
	pointRepo repositories.PointRepository,
	embeddingRepo repositories.PointEmbeddingRepository,
	client utils.EmbeddingClientInterface,
	logger *zap.SugaredLogger,
) EmbeddingServiceInterface {
	return &EmbeddingService{
		pointRepo:     pointRepo,
		embeddingRepo: embeddingRepo,
		client:        client,
		logger:        logger,
	}
}

func (s *EmbeddingService) embedPoint(ctx context.Context, point *db_models.Point) (db_models.PointEmbedding, error) {
	text := BuildPointText(point)

	vector, err := s.client.GetEmbedding(ctx, text)
	if err != nil {
		return db_models.PointEmbedding{}, fmt.Errorf("%w: point %s: %v", utils.ErrEmbeddingFailed, point.ID, err)
	}
	if got := len(vector.Slice()); got != utils.EmbeddingDim {
		return db_models.PointEmbedding{}, fmt.Errorf("%w: point %s: got %d dimensions, want %d",
			utils.ErrEmbeddingFailed, point.ID, got, utils.EmbeddingDim)
	}

	return db_models.PointEmbedding{
		PointID:    point.ID,
		Embedding:  vector,
		SourceTags: []string(point.Tags),
	}, nil
}

func (s *EmbeddingService) EmbedMissingPoints(ctx context.Context) (int, error) {
	points, err := s.pointRepo.ListMissingEmbedding(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	created := 0
	for i := range points {
		embedding, err := s.embedPoint(ctx, &points[i])
		if err != nil {
			return created, err
		}
		if err := s.embeddingRepo.Create(ctx, &embedding); err != nil {
			return created, utils.ErrDatabaseError
		}
		created++
	}

	s.logger.Infow("embedded missing points", "created", created)
	return created, nil
}

func (s *EmbeddingService) RefreshAllEmbeddings(ctx context.Context) (int, error) {
	points, err := s.pointRepo.ListAll(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	// All provider calls happen before any write so a mid-run failure
	// commits nothing.
	embeddings := make([]db_models.PointEmbedding, 0, len(points))
	for i := range points {
		embedding, err := s.embedPoint(ctx, &points[i])
		if err != nil {
			return 0, err
		}
		embeddings = append(embeddings, embedding)
	}

	if err := s.embeddingRepo.UpsertAll(ctx, embeddings); err != nil {
		return 0, utils.ErrDatabaseError
	}

	s.logger.Infow("refreshed embeddings", "refreshed", len(embeddings))
	return len(embeddings), nil
}

func (s *EmbeddingService) UpdatePointEmbedding(ctx context.Context, pointID string) (string, error) {
	point, err := s.pointRepo.GetByID(ctx, pointID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if point == nil {
		return "", utils.ErrPointNotFound
	}

	embedding, err := s.embedPoint(ctx, point)
	if err != nil {
		return "", err
	}

	if err := s.embeddingRepo.Upsert(ctx, &embedding); err != nil {
		return "", utils.ErrDatabaseError
	}

	return point.ID, nil
}

func (s *EmbeddingService) SearchSimilarPoints(ctx context.Context, query string, limit int) ([]response_models.SimilarPoint, error) {
	vector, err := s.client.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrEmbeddingFailed, err)
	}

	rows, err := s.embeddingRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return []response_models.SimilarPoint{}, nil
	}

	ids := make([]string, 0, len(rows))
	similarity := make(map[string]float64, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PointID)
		similarity[row.PointID] = row.Similarity
	}

	points, err := s.pointRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byID := make(map[string]db_models.Point, len(points))
	for _, point := range points {
		byID[point.ID] = point
	}

	// Keep the similarity ranking from the vector query.
	out := make([]response_models.SimilarPoint, 0, len(rows))
	for _, row := range rows {
		point, ok := byID[row.PointID]
		if !ok {
			continue
		}
		out = append(out, response_models.SimilarPoint{
			ID:          point.ID,
			Name:        point.Name,
			Description: point.Description,
			ImageURL:    point.ImageURL,
			Coordinates: response_models.Coordinates{
				Lat: point.CoordinatesLat,
				Lng: point.CoordinatesLng,
			},
			Similarity: similarity[point.ID],
		})
	}
	return out, nil
}
