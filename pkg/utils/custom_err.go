package utils

import "errors"

var (
	ErrRouteNotFound      = errors.New("route not found")
	ErrPointNotFound      = errors.New("point not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid route status")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrEmbeddingFailed    = errors.New("embedding provider call failed")
	ErrGenerationFailed   = errors.New("route generation failed")
	ErrDatabaseError      = errors.New("database error")
)
