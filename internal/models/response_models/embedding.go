package response_models

type EmbedMissingResponse struct {
	CreatedEmbeddings int `json:"created_embeddings"`
}

type EmbedRefreshResponse struct {
	RefreshedEmbeddings int `json:"refreshed_embeddings"`
}

type EmbedUpdateResponse struct {
	PointID string `json:"point_id"`
	Message string `json:"message"`
}

type SimilarPoint struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    *string     `json:"image_url"`
	Coordinates Coordinates `json:"coordinates"`
	Similarity  float64     `json:"similarity"`
}
