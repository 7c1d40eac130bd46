package providers

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"wttrloc/internal/config"
	"wttrloc/internal/core"
	"wttrloc/internal/pkg/logger"
)

// OpenAIProvider implements core.Provider for OpenAI-compatible chat completion APIs
type OpenAIProvider struct {
	baseURL  string
	tokenEnv string
	client   *http.Client
	log      *logger.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// NewOpenAIProvider creates a provider for cfg.BaseURL (e.g. "https://api.openai.com/v1");
// the bearer token is read from the env var named by cfg.TokenEnv on every call
func NewOpenAIProvider(cfg config.InferenceConfig, log *logger.Logger) *OpenAIProvider {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	return &OpenAIProvider{
		baseURL:  cfg.BaseURL,
		tokenEnv: cfg.TokenEnv,
		client:   newHTTPClient(cfg.Timeout),
		log:      log.Named("openai"),
	}
}

// ID returns the unique identifier for this provider
func (p *OpenAIProvider) ID() string {
	return "openai"
}

// Generate sends the prompt as a single user message and returns the first choice
func (p *OpenAIProvider) Generate(ctx context.Context, req *core.InferenceRequest) (*core.InferenceResponse, error) {
	body, err := sonic.Marshal(chatRequest{
		Model:    req.Model,
		Messages: []chatMessage{{Role: "user", Content: req.Prompt}},
		Stream:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	headers := make(http.Header)
	if p.tokenEnv != "" {
		if token := os.Getenv(p.tokenEnv); token != "" {
			headers.Set("Authorization", "Bearer "+token)
		}
	}

	url := p.baseURL + "/chat/completions"
	p.log.Debug("sending chat completion request", zap.String("url", url), zap.String("model", req.Model))

	respBody, err := postJSON(ctx, p.client, url, body, headers)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	result := gjson.ParseBytes(respBody)
	content := result.Get("choices.0.message.content")
	if !content.Exists() {
		return nil, fmt.Errorf("openai: %w", core.ErrEmptyResponse)
	}

	return &core.InferenceResponse{
		Model:           result.Get("model").String(),
		Response:        content.String(),
		Done:            true,
		DoneReason:      result.Get("choices.0.finish_reason").String(),
		PromptEvalCount: int(result.Get("usage.prompt_tokens").Int()),
		EvalCount:       int(result.Get("usage.completion_tokens").Int()),
	}, nil
}
