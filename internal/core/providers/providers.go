package providers

import (
	"errors"
	"fmt"

	"wttrloc/internal/config"
	"wttrloc/internal/core"
	"wttrloc/internal/pkg/logger"
)

// ErrUnknownProvider is returned by New for an unsupported inference.provider value
var ErrUnknownProvider = errors.New("unknown inference provider")

// New builds the provider named by cfg.Provider (empty means ollama)
func New(cfg config.InferenceConfig, log *logger.Logger) (core.Provider, error) {
	switch cfg.Provider {
	case "", "ollama":
		return NewOllamaProvider(cfg, log), nil
	case "openai":
		return NewOpenAIProvider(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
