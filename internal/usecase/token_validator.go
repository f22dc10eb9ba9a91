package usecase

import (
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/pkg/jwt"

	"github.com/google/uuid"
)

// roles allowed to edit stocks; anything else is refused by the middleware
var operatorRoles = map[string]struct{}{
	"pro":   {},
	"admin": {},
}

var ErrRoleNotAllowed = errs.Mark(errs.New("role not allowed to edit stocks"), errs.ErrForbidden)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{
		verifier: verifier,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := t.verifier.Verify(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	if _, ok := operatorRoles[claims.Role]; !ok {
		return uuid.Nil, "", errs.Wrapf(ErrRoleNotAllowed, "%q", claims.Role)
	}

	return claims.UserID, claims.Role, nil
}
