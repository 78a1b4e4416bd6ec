package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexTraceID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestSetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Regexp(t, hexTraceID, traceID)

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other, "each request should get its own trace ID")
}

func TestGetTraceID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), TraceIDKey, 42)
		assert.Empty(t, GetTraceID(ctx))
	})

	t.Run("present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), TraceIDKey, "abc")
		assert.Equal(t, "abc", GetTraceID(ctx))
	})
}

func TestGenerateFallbackTraceID(t *testing.T) {
	assert.Regexp(t, hexTraceID, generateFallbackTraceID())
}
