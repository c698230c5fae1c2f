package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/pkg/cookie"
	"clinic-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken  = errors.New("access token missing")
	errInvalidToken  = errors.New("access token invalid")
	errAdminRequired = errors.New("administrator role required")
	errNoActor       = errors.New("actor missing from context")
)

const ctxActorKey = "actor"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the access token from the cookie or a Bearer header
// and stores the caller as a patient.Actor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token", nil)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
			return
		}
		if !actor.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errAdminRequired, "Administrator access required", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetActor(c *gin.Context, actor patient.Actor) {
	c.Set(ctxActorKey, actor)
}

func GetActor(c *gin.Context) (patient.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return patient.Actor{}, false
	}
	actor, ok := v.(patient.Actor)
	return actor, ok
}
