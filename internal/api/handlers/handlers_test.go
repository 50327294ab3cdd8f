package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"multiplier/internal/models"
	"multiplier/internal/service"
)

func setupRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	services := service.NewServices()

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.GET("/health", NewHealthHandler(services.Health, logger).Health)
	r.GET("/multiply/:a/:b", NewCalculatorHandler(services.Calculator, logger).Multiply)
	return r, logs
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	r, logs := setupRouter(t)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, service.Version, resp.Version)
	assert.NotEmpty(t, resp.Message)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("health check requested").Len())
}

func TestMultiply_Success(t *testing.T) {
	r, logs := setupRouter(t)

	w := get(r, "/multiply/6/7")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MultiplyResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.MultiplyResult{
		Result:    42,
		Message:   "Successfully multiplied 6 and 7",
		Operation: "6 × 7 = 42",
	}, resp)

	entries := logs.FilterMessage("multiplication request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 6, fields["a"])
	assert.EqualValues(t, 7, fields["b"])
	assert.EqualValues(t, 42, fields["result"])
}

func TestMultiply_Operands(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		path      string
		result    int32
		operation string
	}{
		{"/multiply/0/9", 0, "0 × 9 = 0"},
		{"/multiply/-8/0", 0, "-8 × 0 = 0"},
		{"/multiply/-3/4", -12, "-3 × 4 = -12"},
		{"/multiply/+5/5", 25, "5 × 5 = 25"},
		{"/multiply/-2147483648/1", -2147483648, "-2147483648 × 1 = -2147483648"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			var resp models.MultiplyResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.result, resp.Result)
			assert.Equal(t, tt.operation, resp.Operation)
		})
	}
}

func TestMultiply_InvalidOperands(t *testing.T) {
	r, logs := setupRouter(t)

	paths := []string{
		"/multiply/foo/2",
		"/multiply/2/bar",
		"/multiply/2.5/2",
		"/multiply/2147483648/1",
		"/multiply/1/-2147483649",
		"/multiply//7",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			w := get(r, p)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}

	assert.Zero(t, logs.FilterMessage("multiplication request").Len())
}

func TestMultiply_Overflow(t *testing.T) {
	r, logs := setupRouter(t)

	for _, p := range []string{"/multiply/2147483647/2", "/multiply/-2147483648/-1"} {
		t.Run(p, func(t *testing.T) {
			w := get(r, p)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp models.ErrorResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "overflow", resp.Error)
			assert.Contains(t, resp.Message, "overflows")

			_, err := time.Parse(time.RFC3339, resp.Timestamp)
			assert.NoError(t, err)
		})
	}

	assert.Equal(t, 2, logs.FilterMessage("multiplication overflow").Len())
}
