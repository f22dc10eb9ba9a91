//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"pro-stock-editor/internal/handler/httperr"
	"pro-stock-editor/internal/handler/middleware"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		status  int
		message string
	}{
		{
			name: "public error keeps its response",
			handler: func(c *gin.Context) {
				resp := httperr.Response{Status: http.StatusConflict}
				resp.Error.Message = "Already open"
				_ = c.Error(gin.Error{Err: errs.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
			},
			status:  http.StatusConflict,
			message: "Already open",
		},
		{
			name: "private not found error",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.Mark(errs.New("gone"), errs.ErrNotFound))
			},
			status:  http.StatusNotFound,
			message: "Not Found",
		},
		{
			name: "private upstream error",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.Mark(errs.New("timeout"), errs.ErrUpstream))
			},
			status:  http.StatusBadGateway,
			message: "Bad Gateway",
		},
		{
			name: "unclassified error hides its cause",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.New("pool exhausted"))
			},
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/", tt.handler)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")

			httptest.AssertErrorResponse(t, w, tt.status, tt.message)
			assert.NotContains(t, w.Body.String(), "pool exhausted")
		})
	}

	t.Run("handler that wrote a status is left alone", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.DELETE("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.PerformRequest(t, r, http.MethodDelete, "/", nil, "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.CustomRecovery())
		r.GET("/", func(*gin.Context) { panic("boom") })

		w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
