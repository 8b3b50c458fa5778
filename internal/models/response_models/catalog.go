package response_models

type CityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ImageURL    *string `json:"image_url"`
	Description string  `json:"description"`
}

type InterestResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type MoodResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type FormDataResponse struct {
	Cities    []CityResponse     `json:"cities"`
	Interests []InterestResponse `json:"interests"`
	Moods     []MoodResponse     `json:"moods"`
}

type CityAreaResponse struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type CityAreasResponse struct {
	City  CityRef            `json:"city"`
	Areas []CityAreaResponse `json:"areas"`
}

type CityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
