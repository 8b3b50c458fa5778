package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is an append-only reaction record; a route accumulates rows, it
// never overwrites them.
type Feedback struct {
	ID      string     `gorm:"primaryKey;size:50"`
	RouteID string     `gorm:"size:50;index"`
	UserID  *uuid.UUID `gorm:"type:uuid"`
	Rating  *int       `gorm:"check:rating >= 1 AND rating <= 5"`
	Comment *string    `gorm:"type:text"`
	Going   bool       `gorm:"default:false;index:idx_feedback_going_created"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_feedback_going_created"`
}

func (Feedback) TableName() string { return "feedback" }

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
