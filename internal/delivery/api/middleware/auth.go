package middleware

import (
	"strings"

	"playlog/internal/delivery/api/response"
	deliverycontext "playlog/internal/delivery/context"
	domainerrors "playlog/internal/domain/errors"
	"playlog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware gates routes behind a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the bearer token and exposes its subject to the handler.
// Rejected requests never reach the wrapped handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyUserID, claims.UserID)
		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireSelf only lets the request through when the authenticated subject owns the
// resource named by the path parameter. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := GetUserID(c)
			if !ok || userID != c.Param(param) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetUserID returns the subject attached by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(contextKeyUserID).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}

func bearerToken(header string) (string, bool) {
	// The auth scheme is case-insensitive.
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
