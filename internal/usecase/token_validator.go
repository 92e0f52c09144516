package usecase

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer token into the caller's identity for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// ClaimsParser verifies a signed token and returns its claims.
type ClaimsParser interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidator struct {
	parser ClaimsParser
}

func NewTokenValidator(parser ClaimsParser) TokenValidator {
	return tokenValidator{parser: parser}
}

// ValidateToken rejects tokens whose signature is fine but whose identity is
// unusable: a nil user id or a role this service does not know.
func (v tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.parser.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, roleErr := user.NewRole(claims.Role)
	if claims.UserID == uuid.Nil || roleErr != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}
	return claims.UserID, role, nil
}
