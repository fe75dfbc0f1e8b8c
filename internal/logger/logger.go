// Package logger builds the service's zap logger.
package logger

import (
	"go.uber.org/zap"
)

// NewLogger creates and returns a new sugared logger.
func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
