package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PointEmbedding holds exactly one vector per point; the point id is the
// primary key, so store cardinality can never exceed one row per point.
// SourceTags snapshots the tags that went into the embedded text.
type PointEmbedding struct {
	PointID    string          `gorm:"primaryKey;size:400;column:point_id"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	SourceTags pq.StringArray  `gorm:"type:text[]"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (PointEmbedding) TableName() string { return "point_embeddings" }
