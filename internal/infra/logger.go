package infra

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. APP_ENV=production switches
// to the JSON production config, anything else gets the development one.
func NewLogger() *zap.SugaredLogger {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	return logger.Sugar()
}
