package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceIDContext(t *testing.T) {
	t.Run("adds provided trace ID to context", func(t *testing.T) {
		ctx := context.Background()
		traceID := "test-trace-123"

		newCtx := WithTraceID(ctx, traceID)
		require.NotNil(t, newCtx)

		extractedTraceID := GetTraceID(newCtx)
		assert.Equal(t, traceID, extractedTraceID)
	})

	t.Run("generates new trace ID when empty string provided", func(t *testing.T) {
		ctx := context.Background()

		newCtx := WithTraceID(ctx, "")
		require.NotNil(t, newCtx)

		extractedTraceID := GetTraceID(newCtx)
		assert.NotEmpty(t, extractedTraceID)
		// Verify it's a valid UUID format (36 characters with hyphens)
		assert.Len(t, extractedTraceID, 36)
	})

	t.Run("preserves other context values", func(t *testing.T) {
		type testKey string
		key := testKey("test-key")
		value := "test-value"

		ctx := context.WithValue(context.Background(), key, value)
		traceID := "trace-456"

		newCtx := WithTraceID(ctx, traceID)
		require.NotNil(t, newCtx)

		// Verify trace ID is present
		assert.Equal(t, traceID, GetTraceID(newCtx))

		// Verify original value is preserved
		extractedValue, ok := newCtx.Value(key).(string)
		require.True(t, ok)
		assert.Equal(t, value, extractedValue)
	})
}

func TestGetTraceID(t *testing.T) {
	t.Run("returns trace ID from context", func(t *testing.T) {
		traceID := "test-trace-789"
		ctx := context.WithValue(context.Background(), TraceIDKey, traceID)

		extractedTraceID := GetTraceID(ctx)
		assert.Equal(t, traceID, extractedTraceID)
	})

	t.Run("returns empty string when no trace ID in context", func(t *testing.T) {
		ctx := context.Background()

		extractedTraceID := GetTraceID(ctx)
		assert.Empty(t, extractedTraceID)
	})

	t.Run("returns empty string when trace ID is wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), TraceIDKey, 12345)

		extractedTraceID := GetTraceID(ctx)
		assert.Empty(t, extractedTraceID)
	})
}
