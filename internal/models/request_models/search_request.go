package request_models

type SearchPointsRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
