package db_models

import "time"

type PartnerTier string

const (
	TierBasic   PartnerTier = "basic"
	TierPremium PartnerTier = "premium"
	TierVIP     PartnerTier = "vip"
)

type PartnerStatus string

const (
	PartnerActive    PartnerStatus = "active"
	PartnerPaused    PartnerStatus = "paused"
	PartnerSuspended PartnerStatus = "suspended"
)

type Partner struct {
	ID         string        `gorm:"primaryKey;size:50"`
	Name       string        `gorm:"size:200"`
	Email      *string
	Phone      *string       `gorm:"size:20"`
	Tier       PartnerTier   `gorm:"size:10"`
	MonthlyFee float64
	Status     PartnerStatus `gorm:"size:10;default:active"`

	TotalImpressions     int
	ImpressionsThisMonth int
	LastImpressionDate   *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`

	Points []Point `gorm:"foreignKey:PartnerID"`
}

func (Partner) TableName() string { return "partners" }
