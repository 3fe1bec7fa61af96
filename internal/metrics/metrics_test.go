package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordSelection(t *testing.T) {
	RecordSelection("simple", "applied")
	RecordSelection("choice", "applied")
	RecordSelection("choice", "unknown_option")

	assert.True(t, true)
}

func TestRecordSubmission(t *testing.T) {
	RecordSubmission("success")
	RecordSubmission("error")

	assert.True(t, true)
}

func TestRecordSubmissionPhase(t *testing.T) {
	RecordSubmissionPhase("sheet_write", 100*time.Millisecond)
	RecordSubmissionPhase("confirmation", 50*time.Millisecond)

	assert.True(t, true)
}

func TestSetActiveForms(t *testing.T) {
	SetActiveForms(3)
	SetActiveForms(0)

	assert.True(t, true)
}
