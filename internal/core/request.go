package core

import "errors"

// ErrEmptyResponse is returned by providers when the endpoint answers without completion text
var ErrEmptyResponse = errors.New("inference endpoint returned no response field")

// InferenceRequest is the payload sent to a generate endpoint
// (Stream is always false: the whole completion comes back in one response)
type InferenceRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// InferenceResponse carries the completion text plus provider metadata;
// only Response is used for extraction
type InferenceResponse struct {
	Model              string `json:"model"`
	CreatedAt          string `json:"created_at,omitempty"`
	Response           string `json:"response"`
	Done               bool   `json:"done"`
	DoneReason         string `json:"done_reason,omitempty"`
	TotalDuration      int64  `json:"total_duration,omitempty"`
	LoadDuration       int64  `json:"load_duration,omitempty"`
	PromptEvalCount    int    `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration int64  `json:"prompt_eval_duration,omitempty"`
	EvalCount          int    `json:"eval_count,omitempty"`
	EvalDuration       int64  `json:"eval_duration,omitempty"`
}
