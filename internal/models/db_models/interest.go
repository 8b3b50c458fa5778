package db_models

// Interest is a tag-vocabulary entry, e.g. id "parks" / label "Parks".
type Interest struct {
	ID          string `gorm:"primaryKey;size:50"`
	Label       string `gorm:"size:100"`
	Description string `gorm:"type:text"`

	Points []Point `gorm:"many2many:point_interests"`
}

func (Interest) TableName() string { return "interests" }
