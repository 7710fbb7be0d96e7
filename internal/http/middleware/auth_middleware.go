package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"notekeep/internal/utils/apierror"
)

const APIKeyHeader = "x-api-key"

// CredentialVerifier checks a request-supplied credential. The static
// shared key is the only implementation today; swapping in a real
// scheme must not touch handler logic.
type CredentialVerifier interface {
	Verify(credential string) bool
}

type StaticKeyVerifier struct {
	key string
}

func NewStaticKeyVerifier(key string) *StaticKeyVerifier {
	return &StaticKeyVerifier{key: key}
}

func (s *StaticKeyVerifier) Verify(credential string) bool {
	return subtle.ConstantTimeCompare([]byte(s.key), []byte(credential)) == 1
}

type AuthMiddlewareConfig struct {
	Verifier CredentialVerifier
}

// NewAuthMiddleware gates every route it wraps behind the API key
// check, short-circuiting before any validation or store access.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(APIKeyHeader)
			if key == "" || !cfg.Verifier.Verify(key) {
				return c.JSON(apierror.InvalidAPIKeyError.Code(), apierror.InvalidAPIKeyError)
			}
			return next(c)
		}
	}
}
