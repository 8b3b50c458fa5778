package response_models

// UserStatistics is the per-user rollup over all owned routes.
// TotalDistanceKm is a declared-but-unimplemented field kept at 0 so the
// response shape stays stable for clients.
type UserStatistics struct {
	TotalRoutes          int64   `json:"total_routes"`
	CompletedRoutes      int64   `json:"completed_routes"`
	ActiveRoutes         int64   `json:"active_routes"`
	TotalDurationMinutes int64   `json:"total_duration_minutes"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalCost            int64   `json:"total_cost"`
	UniquePlaces         int64   `json:"unique_places"`
	FavouriteCity        *string `json:"favourite_city"`
	LastActivity         *string `json:"last_activity"`
}
