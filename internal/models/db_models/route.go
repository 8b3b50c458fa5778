package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WalkStatus string

const (
	WalkGoing     WalkStatus = "going"
	WalkDone      WalkStatus = "done"
	WalkCancelled WalkStatus = "cancelled"
)

func (s WalkStatus) Valid() bool {
	switch s {
	case WalkGoing, WalkDone, WalkCancelled:
		return true
	}
	return false
}

// Route is one user's generated walking plan. PointSequence is the single
// authoritative ordered list of point ids; the point membership set is its
// distinct projection, derived at query time rather than stored twice.
type Route struct {
	ID        string    `gorm:"primaryKey;size:50"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_routes_user_created"`

	TotalDuration int  // minutes
	TotalCost     *int

	CityID *string `gorm:"size:50"`
	City   *City   `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`

	Description *string `gorm:"type:text"`

	UserID *uuid.UUID `gorm:"type:uuid;index:idx_routes_user_created"`
	User   *Account   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	PointSequence datatypes.JSONSlice[string]

	Status WalkStatus `gorm:"size:20;default:going"`

	Feedbacks []Feedback `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (Route) TableName() string { return "routes" }

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = WalkGoing
	}
	return nil
}

// PointSet returns the distinct point ids of the sequence, first occurrence
// order preserved.
func (r *Route) PointSet() []string {
	seen := make(map[string]struct{}, len(r.PointSequence))
	out := make([]string, 0, len(r.PointSequence))
	for _, id := range r.PointSequence {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
