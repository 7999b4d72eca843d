package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init installs the global zap logger for the given environment.
// Production gets the JSON production config, everything else the
// human-readable development one.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
