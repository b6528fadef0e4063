package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/metinatakli/theater-box-office/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app := newTestApplication()
	app.config.Env = "test"

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)
	serve(app, w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var response api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "UP", response.Status)
	assert.Equal(t, "test", response.SystemInfo.Environment)
}

func TestGetApiSpec(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/openapi.json", nil)
	serve(app, w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var document struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&document))

	assert.Equal(t, "3.0.3", document.OpenAPI)
	assert.Contains(t, document.Paths, "/reservations")
	assert.Contains(t, document.Paths["/performances/{performanceId}/availability"], "get")
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/tickets", nil)
	serve(app, w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
