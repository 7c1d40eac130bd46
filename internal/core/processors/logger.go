package processors

import (
	"time"

	"go.uber.org/zap"

	"wttrloc/internal/core"
)

// RequestLogger logs the start and end of each inference call
type RequestLogger struct {
	name     string
	priority int
}

// NewRequestLogger creates a request logger processor
func NewRequestLogger() *RequestLogger {
	return &RequestLogger{
		name:     "request-logger",
		priority: -100, // must run first
	}
}

// Name returns the processor name
func (r *RequestLogger) Name() string {
	return r.name
}

// Priority returns the processor priority
func (r *RequestLogger) Priority() int {
	return r.priority
}

// OnRequest logs the model and prompt size (the prompt itself only at debug)
func (r *RequestLogger) OnRequest(ctx *core.ExtractContext, req *core.InferenceRequest) error {
	ctx.Log.Info("Extraction Started",
		zap.String("model", req.Model),
		zap.Int("prompt_len", len(req.Prompt)),
		zap.Bool("stream", req.Stream),
	)
	ctx.Log.Debug("Extraction Prompt", zap.String("prompt", req.Prompt))
	return nil
}

// OnResponse logs latency, the raw completion and whatever metadata the caller recorded
func (r *RequestLogger) OnResponse(ctx *core.ExtractContext, resp *core.InferenceResponse) error {
	latency := time.Since(ctx.StartTime)

	fields := []zap.Field{
		zap.Duration("latency", latency),
		zap.String("response", resp.Response),
		zap.Int("eval_count", resp.EvalCount),
	}
	fields = append(fields, ctx.MetadataFields()...)

	ctx.Log.Info("Extraction Finished", fields...)
	return nil
}
