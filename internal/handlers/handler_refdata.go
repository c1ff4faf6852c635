package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
)

// refDataHandler synthesizes the four CRUD endpoints for one reference entity.
// R is the bound request DTO; its validation tags run in ShouldBindJSON and its
// ToDomain result is handed to the service untouched.
type refDataHandler[T domain.RefEntity, R interface{ ToDomain() T }] struct {
	svc portssvc.RefDataSvc[T]
	// responseKey is the JSON field wrapping list results, e.g. "banks".
	responseKey string
	// urlParam names the delete query parameter and the update path parameter.
	urlParam string
	label    string
}

// RegisterRefDataRoutes mounts list/create/update/delete for one entity under
// rg/<path>. Role policy lives in the service config, not here: the routes only
// require an authenticated user so that per-operation role sets can differ.
func RegisterRefDataRoutes[T domain.RefEntity, R interface{ ToDomain() T }](
	rg *gin.RouterGroup,
	path string,
	svc portssvc.RefDataSvc[T],
	responseKey string,
	urlParam string,
) {
	h := &refDataHandler[T, R]{
		svc:         svc,
		responseKey: responseKey,
		urlParam:    urlParam,
		label:       path,
	}

	group := rg.Group("/" + path)
	{
		group.GET("", h.list)
		group.POST("", h.create)
		group.PUT("/:"+urlParam, h.update)
		group.DELETE("", h.remove)
	}
}

func (h *refDataHandler[T, R]) list(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	records, err := h.svc.List(c.Request.Context(), *actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{h.responseKey: records})
}

func (h *refDataHandler[T, R]) create(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind create request",
			slog.String("entity", h.label), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), *actor, req.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *refDataHandler[T, R]) update(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	currentKey := c.Param(h.urlParam)
	if currentKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + h.urlParam + " parameter"})
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind update request",
			slog.String("entity", h.label), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), *actor, currentKey, req.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *refDataHandler[T, R]) remove(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	key := c.Query(h.urlParam)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + h.urlParam + " query parameter"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), *actor, key); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// respondError maps the service error taxonomy onto HTTP statuses. Sentinel
// messages are safe to surface; anything unmapped is a 500 with a generic body.
func (h *refDataHandler[T, R]) respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error",
			slog.String("entity", h.label), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
