package main

import (
	"fmt"

	"go.uber.org/zap"

	"wttrloc/internal/config"
	"wttrloc/internal/core/providers"
	"wttrloc/internal/location"
	"wttrloc/internal/pkg/logger"
)

// app holds what every command needs: config, logger and a wired extractor.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	extractor *location.Extractor
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := providers.New(cfg.Inference, logger.NewLogger(zl))
	if err != nil {
		zl.Sync()
		return nil, err
	}

	zl.Debug("inference configured",
		zap.String("provider", provider.ID()),
		zap.String("base_url", cfg.Inference.BaseURL),
		zap.String("model", cfg.Inference.Model),
		zap.Duration("timeout", cfg.Inference.Timeout),
	)

	return &app{
		cfg:       cfg,
		log:       zl,
		extractor: location.NewExtractor(provider, cfg.Inference.Model, location.WithLogger(zl)),
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}
