package core

import "context"

// Provider is the inference endpoint adapter
type Provider interface {
	// ID returns the unique identifier for this provider
	ID() string
	// Generate sends one non-streaming request and returns the whole completion
	Generate(ctx context.Context, req *InferenceRequest) (*InferenceResponse, error)
}
