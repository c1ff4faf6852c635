package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// authUserKey is the key under which the authenticated identity is stored in
// the request context.
const authUserKey = contextKey("authUser")

// GetAuthUser retrieves the authenticated identity from the request context.
// It returns nil (never panics) for unauthenticated or public requests.
func GetAuthUser(c *gin.Context) *domain.AuthUser {
	if user, ok := c.Request.Context().Value(authUserKey).(*domain.AuthUser); ok {
		return user
	}
	return nil
}
