package core

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExtractContext extends context.Context with per-extraction fields
type ExtractContext struct {
	context.Context
	RequestID string
	StartTime time.Time
	Log       *zap.Logger

	mu       sync.RWMutex
	metadata map[string]interface{}
}

// NewExtractContext creates a context with a fresh request id, tagging the logger with it
func NewExtractContext(ctx context.Context, logger *zap.Logger) *ExtractContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &ExtractContext{
		Context:   ctx,
		RequestID: id,
		StartTime: time.Now(),
		Log:       logger.With(zap.String("request_id", id)),
		metadata:  make(map[string]interface{}),
	}
}

// SetMetadata sets a metadata value (thread-safe)
func (c *ExtractContext) SetMetadata(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadata[key] = value
}

// MetadataFields returns all metadata as zap fields in key order (thread-safe)
func (c *ExtractContext) MetadataFields() []zap.Field {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.metadata))
	for k := range c.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, c.metadata[k]))
	}
	return fields
}
