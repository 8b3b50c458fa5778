package response_models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeneratedPoint is the per-point payload produced by the route generator.
type GeneratedPoint struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	VisitTime   string      `json:"visit_time"`
	Tags        []string    `json:"tags"`
	Coordinates Coordinates `json:"coordinates"`
}

type GeneratedRoute struct {
	RouteID string           `json:"route_id"`
	UserID  *string          `json:"user_id"`
	MapURL  string           `json:"map_url"`
	Points  []GeneratedPoint `json:"points"`
}

type RoutePoint struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    *string     `json:"image_url"`
	Coordinates Coordinates `json:"coordinates"`
}

// RouteDetailResponse returns point_sequence and points as two independent
// fields; point_sequence carries display order, points carries the expanded
// membership set. Zipping them is the caller's job.
type RouteDetailResponse struct {
	RouteID       string       `json:"route_id"`
	UserID        *string      `json:"user_id"`
	Description   *string      `json:"description"`
	TotalDuration int          `json:"total_duration"`
	TotalCost     *int         `json:"total_cost"`
	Status        string       `json:"status"`
	PointSequence []string     `json:"point_sequence"`
	Points        []RoutePoint `json:"points"`
	CreatedAt     string       `json:"created_at"`
}

type RouteSummary struct {
	RouteID       string  `json:"route_id"`
	Description   *string `json:"description"`
	TotalDuration int     `json:"total_duration"`
	TotalCost     *int    `json:"total_cost"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type RouteStatusResponse struct {
	RouteID   string `json:"route_id"`
	NewStatus string `json:"new_status"`
	UpdatedAt string `json:"updated_at"`
}

type CancelRouteResponse struct {
	RouteID      string  `json:"route_id"`
	Status       string  `json:"status"`
	CancelReason *string `json:"cancel_reason"`
	UpdatedAt    string  `json:"updated_at"`
}

type FeedbackResponse struct {
	RouteID   string  `json:"route_id"`
	UserID    *string `json:"user_id"`
	Rating    *int    `json:"rating"`
	Comment   *string `json:"comment"`
	CreatedAt string  `json:"created_at"`
}
