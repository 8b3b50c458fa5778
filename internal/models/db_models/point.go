package db_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Point is a place of interest a route may visit.
type Point struct {
	ID          string                      `gorm:"primaryKey;size:400"`
	Name        string                      `gorm:"size:1000"`
	Description string                      `gorm:"type:text"`
	Tags        datatypes.JSONSlice[string]
	ImageURL    *string

	CityID string    `gorm:"size:50;index:idx_points_city_coords"`
	City   City      `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
	AreaID *uint
	Area   *CityArea `gorm:"foreignKey:AreaID;constraint:OnDelete:SET NULL"`

	Interests []Interest `gorm:"many2many:point_interests"`
	Moods     []Mood     `gorm:"many2many:point_moods"`

	CoordinatesLat float64 `gorm:"type:decimal(9,6);index:idx_points_city_coords"`
	CoordinatesLng float64 `gorm:"type:decimal(9,6);index:idx_points_city_coords"`
	Address        *string `gorm:"size:50"`

	AverageVisitDuration int  // minutes
	AverageCost          *int

	IsPartner   bool    `gorm:"default:false;index"`
	PartnerTier *string `gorm:"size:10"`
	PartnerID   *string `gorm:"size:50"`
	Partner     *Partner `gorm:"foreignKey:PartnerID;constraint:OnDelete:SET NULL"`

	WorkingHours   datatypes.JSON `gorm:"type:jsonb"`
	BestVisitTime  datatypes.JSONSlice[string]
	IsSeasonal     bool `gorm:"default:false"`
	SeasonalMonths datatypes.JSONSlice[int]

	ViewCount    int
	SuccessRate  float64 `gorm:"type:decimal(3,2);default:0"`
	LastViewedAt *time.Time

	Embedding *PointEmbedding `gorm:"foreignKey:PointID;constraint:OnDelete:CASCADE"`
}

func (Point) TableName() string { return "points" }

// Coordinates are mandatory and must be a valid lat/lon pair.
func (p *Point) BeforeSave(tx *gorm.DB) error {
	if p.CoordinatesLat < -90 || p.CoordinatesLat > 90 ||
		p.CoordinatesLng < -180 || p.CoordinatesLng > 180 {
		return errors.New("point coordinates out of range")
	}
	return nil
}

func (p *Point) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
