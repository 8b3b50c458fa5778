package request_models

type GenerateRouteRequest struct {
	CityID          string   `json:"city_id" binding:"required"`
	TimeOfDay       string   `json:"time_of_day"`
	Interests       []string `json:"interests"`
	Mood            []string `json:"mood"`
	Budget          *int     `json:"budget"`
	Transport       string   `json:"transport"`
	DurationMinutes int      `json:"duration_minutes" binding:"required"`
	Description     string   `json:"description"`
}

type EditRouteStatusRequest struct {
	RouteID string `json:"route_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

type CancelRouteRequest struct {
	RouteID string  `json:"route_id" binding:"required"`
	Reason  *string `json:"reason"`
}

type AddFeedbackRequest struct {
	RouteID string  `json:"route_id" binding:"required"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
