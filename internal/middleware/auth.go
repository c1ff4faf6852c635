package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
)

// AccessTokenCookieName is the cookie fallback for clients that do not send an
// Authorization header.
const AccessTokenCookieName = "access_token"

// AuthOptions controls how Protect gates a route.
type AuthOptions struct {
	// Public bypasses all checks; the handler runs without an identity.
	Public bool
	// RequiredRoles, when non-empty, restricts the route to members of the
	// set. Empty means any authenticated user.
	RequiredRoles domain.RoleSet
}

// Protect returns a middleware that authenticates the request with the token
// service and optionally enforces role membership. Failures are terminal for
// the request: the wrapped handlers never run.
func Protect(tokenSvc portssvc.TokenSvcFacade, opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.Public {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractToken(c)
		if tokenString == "" {
			logger.Warn("Authentication required: no token on request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := tokenSvc.Verify(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// A refresh token carries no role and must never authorize a request.
		if claims.TokenType != portssvc.TokenTypeAccess {
			logger.Warn("Non-access token presented for authorization", slog.String("token_type", claims.TokenType))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		identity := claims.AuthUser()

		if len(opts.RequiredRoles) > 0 && !opts.RequiredRoles.Contains(identity.RoleID) {
			logger.Warn("Permission denied",
				slog.String("user_id", identity.UserID),
				slog.String("role", string(identity.RoleID)),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), authUserKey, &identity)
		enrichedLogger := logger.With(
			slog.String("user_id", identity.UserID),
			slog.String("company_id", identity.CompanyID),
		)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAnyUser authenticates without a role filter.
func RequireAnyUser(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return Protect(tokenSvc, AuthOptions{})
}

// RequireRoles authenticates and restricts the route to the given role set.
func RequireRoles(tokenSvc portssvc.TokenSvcFacade, roles domain.RoleSet) gin.HandlerFunc {
	return Protect(tokenSvc, AuthOptions{RequiredRoles: roles})
}

// RequireAdminOnly restricts the route to administrators.
func RequireAdminOnly(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return Protect(tokenSvc, AuthOptions{RequiredRoles: domain.AdminOnly})
}

// RequireAdminOrManager restricts the route to administrators and managers.
func RequireAdminOrManager(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return Protect(tokenSvc, AuthOptions{RequiredRoles: domain.AdminOrManager})
}

// extractToken pulls the bearer token from the Authorization header, falling
// back to the access-token cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(AccessTokenCookieName); err == nil {
		return cookie
	}
	return ""
}
