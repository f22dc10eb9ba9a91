//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pro-stock-editor/internal/pkg/config"
	"pro-stock-editor/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const RolePro = "pro"

const tokenLifetime = time.Hour

// JWTHelper mints operator tokens the way the pro authentication service does.
type JWTHelper struct {
	secret []byte
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{secret: []byte(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	now := time.Now()
	return h.Sign(t, jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	})
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	issued := time.Now().Add(-2 * tokenLifetime)
	return h.Sign(t, jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(issued),
			ExpiresAt: gojwt.NewNumericDate(issued.Add(tokenLifetime)),
		},
	})
}

// Sign signs arbitrary claims with HS256.
func (h *JWTHelper) Sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(h.secret)
	require.NoError(t, err)
	return token
}
