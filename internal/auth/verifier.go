// internal/auth/verifier.go
// Session verification capability. Token issuance lives in the external auth
// service; this backend only verifies access tokens presented on requests.
// The verifier is constructed and injected explicitly rather than held as
// ambient state.

package auth

import (
	"context"
	"errors"

	"github.com/campusmatch/campusmatch-backend/internal/common/utils"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrWrongType    = errors.New("invalid token type")
)

// TokenVerifier verifies an access token and returns its claims
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*utils.JWTClaims, error)
}

// jwtVerifier verifies HS256 tokens signed with a shared secret
type jwtVerifier struct {
	secret string
}

// NewJWTVerifier creates a TokenVerifier for tokens signed with secret
func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifier{secret: secret}
}

func (v *jwtVerifier) Verify(ctx context.Context, token string) (*utils.JWTClaims, error) {
	claims, err := utils.ValidateJWT(token, v.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
