package db_models

import (
	"gorm.io/datatypes"
)

// City identifiers are opaque slugs, e.g. "moscow".
type City struct {
	ID          string `gorm:"primaryKey;size:50"`
	Name        string `gorm:"size:100"`
	ImageURL    *string
	Description string         `gorm:"type:text"`
	Latitude    *float64
	Longitude   *float64
	BBox        datatypes.JSON `gorm:"type:jsonb"`

	Areas  []CityArea `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
	Points []Point    `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
	Routes []Route    `gorm:"foreignKey:CityID"`
}

func (City) TableName() string { return "cities" }

type CityArea struct {
	ID          uint   `gorm:"primaryKey"`
	CityID      string `gorm:"size:50;index"`
	Name        string `gorm:"size:255"`
	BBox        datatypes.JSON `gorm:"type:jsonb"`
	Latitude    *float64
	Longitude   *float64
	Description *string `gorm:"type:text"`
	ImageURL    *string
}

func (CityArea) TableName() string { return "city_areas" }
