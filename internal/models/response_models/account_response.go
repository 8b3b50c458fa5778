package response_models

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
