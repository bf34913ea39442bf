package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodos/pkg/trace"
)

func TestTraceHeadersPropagateContextID(t *testing.T) {
	ctx := trace.WithContext(context.Background(), "abc123")

	h := traceHeaders(ctx)

	assert.Equal(t, "abc123", h["trace_id"])
}

func TestTraceHeadersGenerateWhenContextHasNone(t *testing.T) {
	h := traceHeaders(context.Background())

	id, ok := h["trace_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
}
