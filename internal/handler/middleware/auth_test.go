//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"pro-stock-editor/internal/handler/middleware"
	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/pkg/jwt"
	"pro-stock-editor/internal/usecase"
	"pro-stock-editor/internal/usecase/shared"
	"pro-stock-editor/tests/common/authtest"
	"pro-stock-editor/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, cfg config.JWTConfig) (*gin.Engine, *shared.Operator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validator := usecase.NewTokenValidator(jwt.NewVerifier(cfg.Secret, cfg.Leeway))
	auth := middleware.NewAuthMiddleware(validator)

	var seen shared.Operator
	r := gin.New()
	r.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		op, ok := shared.OperatorFrom(c.Request.Context())
		require.True(t, ok)
		seen = op
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, op.UserID, userID)
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestRequireAuth(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	helper := authtest.NewJWTHelper(cfg)

	t.Run("valid operator token is forwarded", func(t *testing.T) {
		r, seen := newAuthRouter(t, cfg)
		userID := uuid.New()
		token := helper.GenerateToken(t, userID, authtest.RolePro)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, token)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, shared.Operator{UserID: userID, Token: token}, *seen)
	})

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		message string
	}{
		{
			name:    "missing token",
			token:   func(*testing.T) string { return "" },
			message: "Access token required",
		},
		{
			name:    "malformed token",
			token:   func(*testing.T) string { return "not-a-jwt" },
			message: "Invalid or expired token",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return helper.CreateExpiredToken(t, uuid.New(), authtest.RolePro)
			},
			message: "Invalid or expired token",
		},
		{
			name: "token signed with another secret",
			token: func(t *testing.T) string {
				other := authtest.NewJWTHelper(config.JWTConfig{Secret: "other-secret"})
				return other.GenerateToken(t, uuid.New(), authtest.RolePro)
			},
			message: "Invalid or expired token",
		},
		{
			name: "role not allowed to edit stocks",
			token: func(t *testing.T) string {
				return helper.GenerateToken(t, uuid.New(), "beneficiary")
			},
			message: "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newAuthRouter(t, cfg)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, tt.token(t))

			httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, tt.message)
		})
	}
}
