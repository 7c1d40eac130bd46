package location

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wttrloc/internal/core"
	"wttrloc/internal/core/processors"
)

// Extractor turns a composed prompt into a location token with one inference call.
type Extractor struct {
	provider core.Provider
	model    string
	pipeline *core.Pipeline
	log      *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger handed to each extraction context.
func WithLogger(log *zap.Logger) Option {
	return func(e *Extractor) {
		if log != nil {
			e.log = log
		}
	}
}

// NewExtractor returns an Extractor that sends every request to provider with model.
func NewExtractor(provider core.Provider, model string, opts ...Option) *Extractor {
	e := &Extractor{
		provider: provider,
		model:    model,
		pipeline: core.NewPipeline(processors.NewRequestLogger()),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract sends input as the prompt and returns the completion with surrounding
// whitespace removed. The token is not validated; whatever the model says is returned.
func (e *Extractor) Extract(ctx context.Context, input string) (string, error) {
	ectx := core.NewExtractContext(ctx, e.log.With(zap.String("provider", e.provider.ID())))

	req := &core.InferenceRequest{
		Model:  e.model,
		Prompt: input,
		Stream: false,
	}
	if err := e.pipeline.ExecuteRequest(ectx, req); err != nil {
		return "", fmt.Errorf("request pipeline: %w", err)
	}

	resp, err := e.provider.Generate(ectx, req)
	if err != nil {
		return "", fmt.Errorf("extract location: %w", err)
	}

	token := strings.TrimSpace(resp.Response)
	ectx.SetMetadata("token", token)
	ectx.SetMetadata("kind", string(Classify(token)))

	if err := e.pipeline.ExecuteResponse(ectx, resp); err != nil {
		return "", fmt.Errorf("response pipeline: %w", err)
	}
	return token, nil
}

// ExtractQuestion composes question with PromptTemplate and extracts it.
func (e *Extractor) ExtractQuestion(ctx context.Context, question string) (string, error) {
	return e.Extract(ctx, Compose(question))
}
