package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Status(t *testing.T) {
	router, _, cleanup := newTestRouter(t)
	defer cleanup()

	w := performRequest(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)
	assert.Equal(t, "testing", health.Environment)
}

func TestHealthController_DisconnectedDatabase(t *testing.T) {
	router, db, cleanup := newTestRouter(t)
	defer cleanup()

	require.NoError(t, db.Close())

	w := performRequest(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "disconnected", health.Database)
}
