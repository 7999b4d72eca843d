package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/loca-app/loca-go/internal/client"
	"github.com/loca-app/loca-go/internal/config"
	"github.com/loca-app/loca-go/internal/logger"
)

func Start() error {
	args := ParseArgs()

	conf, err := config.Load(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	baseURL := args.BaseURL
	if baseURL == "" {
		baseURL, err = conf.API.BaseURL()
		if err != nil {
			return fmt.Errorf("failed to resolve base URL -> %w", err)
		}
	}

	c, err := client.New(client.Config{
		BaseURL:       baseURL,
		Timeout:       conf.API.Timeout(),
		HealthTimeout: conf.API.HealthTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize client -> %w", err)
	}

	zap.L().Debug("client ready", zap.String("base_url", baseURL))

	return run(context.Background(), c, args)
}
