package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		status         types.HealthStatus
		expectedStatus int
	}{
		{"liveness", "/health/liveness", types.HealthStatusDown, http.StatusOK},
		{"readiness up", "/health/readiness", types.HealthStatusUp, http.StatusOK},
		{"readiness degraded", "/health/readiness", types.HealthStatusDegraded, http.StatusOK},
		{"readiness down", "/health/readiness", types.HealthStatusDown, http.StatusServiceUnavailable},
		{"detailed", "/health", types.HealthStatusDegraded, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockHealthService)
			svc.On("CheckHealth", mock.Anything).Return(types.HealthCheck{
				Status:     tt.status,
				Components: map[string]types.HealthComponent{"store": {Status: tt.status}},
				Version:    "test",
			}).Maybe()

			h := NewHealthHandler(svc)
			router := gin.New()
			router.GET("/health", h.DetailedHealth)
			router.GET("/health/liveness", h.LivenessCheck)
			router.GET("/health/readiness", h.ReadinessCheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.path != "/health/liveness" {
				var got types.HealthCheck
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.status, got.Status)
				assert.Equal(t, "test", got.Version)
			} else {
				svc.AssertNotCalled(t, "CheckHealth", mock.Anything)
			}
		})
	}
}
