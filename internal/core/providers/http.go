package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	// timeout <= 0 leaves the call bounded only by ctx
	if timeout < 0 {
		timeout = 0
	}
	return &http.Client{Timeout: timeout}
}

// postJSON sends body to url and returns the raw response body
// (non-200 statuses become errors via handleHTTPError)
func postJSON(ctx context.Context, client *http.Client, url string, body []byte, headers http.Header) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, handleHTTPError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// handleHTTPError maps an error status to an error, pulling the message from
// Ollama ({"error": "..."}) or OpenAI ({"error": {"message": "..."}}) bodies
func handleHTTPError(statusCode int, body []byte) error {
	var errMsg string
	if gjson.ValidBytes(body) {
		errNode := gjson.GetBytes(body, "error")
		switch {
		case errNode.Type == gjson.String:
			errMsg = errNode.String()
		case errNode.IsObject():
			errMsg = errNode.Get("message").String()
		}
		if errMsg == "" {
			errMsg = gjson.GetBytes(body, "message").String()
		}
	}
	if errMsg == "" {
		return fmt.Errorf("HTTP %d: %s", statusCode, string(body))
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorized: %s", errMsg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded: %s", errMsg)
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: %s", errMsg)
	case http.StatusNotFound:
		return fmt.Errorf("model not found: %s", errMsg)
	default:
		return fmt.Errorf("HTTP %d: %s", statusCode, errMsg)
	}
}
