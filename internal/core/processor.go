package core

// Processor is a hook around each inference call
type Processor interface {
	// Name returns the processor name
	Name() string
	// Priority returns the execution priority (lower = earlier)
	Priority() int
	// OnRequest is called before the request is sent to the provider
	OnRequest(ctx *ExtractContext, req *InferenceRequest) error
	// OnResponse is called after the response is received from the provider
	OnResponse(ctx *ExtractContext, resp *InferenceResponse) error
}
