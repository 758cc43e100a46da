package logger

import (
	"go.uber.org/zap"
)

// New builds a development logger for local runs and a JSON production logger otherwise
func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}
