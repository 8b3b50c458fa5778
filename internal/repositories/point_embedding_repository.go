package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"progulka/internal/models/db_models"
)

type PointEmbeddingRepository interface {
	Create(ctx context.Context, embedding *db_models.PointEmbedding) error
	Upsert(ctx context.Context, embedding *db_models.PointEmbedding) error
	// UpsertAll replaces the given embeddings inside a single transaction;
	// either every row lands or none does.
	UpsertAll(ctx context.Context, embeddings []db_models.PointEmbedding) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]SimilarPointRow, error)
}

type SimilarPointRow struct {
	PointID    string  `gorm:"column:point_id"`
	Similarity float64 `gorm:"column:similarity"`
}

type pointEmbeddingRepository struct {
	db *gorm.DB
}

func NewPointEmbeddingRepository(db *gorm.DB) PointEmbeddingRepository {
	return &pointEmbeddingRepository{db: db}
}

func (r *pointEmbeddingRepository) Create(ctx context.Context, embedding *db_models.PointEmbedding) error {
	return r.db.WithContext(ctx).Create(embedding).Error
}

var embeddingConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "point_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"embedding", "source_tags", "updated_at"}),
}

func (r *pointEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.PointEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(embeddingConflict).
		Create(embedding).Error
}

func (r *pointEmbeddingRepository) UpsertAll(ctx context.Context, embeddings []db_models.PointEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range embeddings {
			if err := tx.Clauses(embeddingConflict).Create(&embeddings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pointEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]SimilarPointRow, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []SimilarPointRow

	query := `
        SELECT point_id, (1 - (embedding <=> $1)) AS similarity
        FROM point_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
