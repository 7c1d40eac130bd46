package providers

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"wttrloc/internal/config"
	"wttrloc/internal/core"
	"wttrloc/internal/pkg/logger"
)

// OllamaProvider implements core.Provider against the Ollama /api/generate endpoint
type OllamaProvider struct {
	baseURL string
	options map[string]interface{}
	client  *http.Client
	log     *logger.Logger
}

// NewOllamaProvider creates a provider for cfg.BaseURL; cfg.Options are sent as
// the request's "options" object (temperature, num_predict, ...)
func NewOllamaProvider(cfg config.InferenceConfig, log *logger.Logger) *OllamaProvider {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	return &OllamaProvider{
		baseURL: cfg.BaseURL,
		options: cfg.Options,
		client:  newHTTPClient(cfg.Timeout),
		log:     log.Named("ollama"),
	}
}

// ID returns the unique identifier for this provider
func (p *OllamaProvider) ID() string {
	return "ollama"
}

// Generate posts req to /api/generate and decodes the single response object
func (p *OllamaProvider) Generate(ctx context.Context, req *core.InferenceRequest) (*core.InferenceResponse, error) {
	body, err := p.buildBody(req)
	if err != nil {
		return nil, err
	}

	url := p.baseURL + "/api/generate"
	p.log.Debug("sending generate request", zap.String("url", url), zap.String("model", req.Model))

	respBody, err := postJSON(ctx, p.client, url, body, nil)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	if !gjson.ValidBytes(respBody) {
		return nil, fmt.Errorf("ollama: invalid response body: %s", string(respBody))
	}
	if !gjson.GetBytes(respBody, "response").Exists() {
		return nil, fmt.Errorf("ollama: %w", core.ErrEmptyResponse)
	}

	var out core.InferenceResponse
	if err := sonic.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("ollama: failed to unmarshal response: %w", err)
	}
	return &out, nil
}

// buildBody marshals req and merges the configured options in key order
func (p *OllamaProvider) buildBody(req *core.InferenceRequest) ([]byte, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	keys := make([]string, 0, len(p.options))
	for k := range p.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		body, err = sjson.SetBytes(body, "options."+k, p.options[k])
		if err != nil {
			return nil, fmt.Errorf("failed to set option %s: %w", k, err)
		}
	}
	return body, nil
}
