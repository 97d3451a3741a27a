package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	r := gin.New()
	r.GET("/fail", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", fmt.Errorf("get: %w", apperrors.NewResourceNotFoundError("student not found")), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"already exists", apperrors.NewAlreadyExistsError("dup"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation", fmt.Errorf("%w: id is required", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"transition", apperrors.NewCustomError(apperrors.ErrInvalidTransition, "not enrolled"), http.StatusConflict, dto.ErrorCodeInvalidTransition},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalMessage(t *testing.T) {
	_, body := serveError(t, errors.New("secret connection string"))
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestHandleAPIErrorCarriesDetails(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "name is required").
		WithDetails(map[string]interface{}{"name": "name is required"})
	_, body := serveError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "name is required"}, body.Error.Details)
}

func TestBindJSONRejectsInvalidBody(t *testing.T) {
	r := gin.New()
	r.POST("/departments", func(c *gin.Context) {
		var req dto.CreateDepartmentRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"id":"CS"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeValidationFailed))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeBadRequest))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"id":"CS","name":"Computer Science"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHTTPMetricsCountsRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(RequestLogger(), m.Handler())
	r.GET("/students/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"S1", "S2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/students/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/students/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
