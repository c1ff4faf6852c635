package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
)

// registerUserRoutes mounts the identity endpoints.
func registerUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/me", getMe)
	}
}

// getMe godoc
// @Summary Current identity
// @Description Returns the authenticated identity resolved from the access token.
// @Tags users
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /users/me [get]
func getMe(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMeResponse(*actor))
}
