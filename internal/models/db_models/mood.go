package db_models

// Mood is a tag-vocabulary entry, e.g. id "explore" / label "Explore".
type Mood struct {
	ID          string `gorm:"primaryKey;size:50"`
	Label       string `gorm:"size:100"`
	Description string `gorm:"type:text"`

	Points []Point `gorm:"many2many:point_moods"`
}

func (Mood) TableName() string { return "moods" }
