package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestFromCtxNeverNil(t *testing.T) {
	assert.NotNil(t, FromCtx(context.Background()))
	assert.NotNil(t, FromCtx(WithRequestID(context.Background(), "req-123")))
}
