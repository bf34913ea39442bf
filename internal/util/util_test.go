package util

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodos/internal/ai"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(42, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "right", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(42, "secret", -time.Minute)
	require.NoError(t, err)

	// Negative ttl falls back to the default, so the token is still valid.
	userID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestExtractToken(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", ExtractToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer")
	assert.Empty(t, ExtractToken(req))
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
		errType   string
	}{
		{"nil", nil, false, ""},
		{"json syntax", &json.SyntaxError{}, false, "json_decode_error"},
		{"validation", &ai.ValidationError{Field: "title", Message: "empty"}, false, "validation_error"},
		{"no rows", pgx.ErrNoRows, false, "row_not_found"},
		{"duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint`), false, "duplicate_key"},
		{"db connection", errors.New("failed to acquire connection from pool"), true, "db_connection_error"},
		// context.DeadlineExceeded satisfies net.Error, so the network
		// branch classifies it first.
		{"deadline", context.DeadlineExceeded, true, "network_timeout"},
		{"canceled", context.Canceled, false, "context_canceled"},
		{"unknown", errors.New("something odd"), false, "unknown_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retryable, errType := IsRetryableError(tt.err)
			assert.Equal(t, tt.retryable, retryable)
			assert.Equal(t, tt.errType, errType)
		})
	}
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, ShouldRetry(0, 3, false))
	assert.True(t, ShouldRetry(0, 3, true))
	assert.True(t, ShouldRetry(3, 3, true))
	assert.False(t, ShouldRetry(4, 3, true))
}
