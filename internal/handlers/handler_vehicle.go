package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
)

// vehicleHandler handles the transactional purchase and sale records that
// reference the catalog entities.
type vehicleHandler struct {
	purchaseService portssvc.VehiclePurchaseSvcFacade
	saleService     portssvc.VehicleSaleSvcFacade
}

// registerVehicleRoutes mounts purchase and sale recording for the tenant.
func registerVehicleRoutes(rg *gin.RouterGroup, purchases portssvc.VehiclePurchaseSvcFacade, sales portssvc.VehicleSaleSvcFacade) {
	h := &vehicleHandler{purchaseService: purchases, saleService: sales}

	rg.GET("/vehicle-purchases", h.listPurchases)
	rg.POST("/vehicle-purchases", h.createPurchase)
	rg.GET("/vehicle-sales", h.listSales)
	rg.POST("/vehicle-sales", h.createSale)
}

// createPurchase godoc
// @Summary Record a vehicle purchase
// @Tags vehicles
// @Accept json
// @Produce json
// @Param purchase body dto.CreateVehiclePurchaseRequest true "Purchase details"
// @Success 201 {object} domain.VehiclePurchase
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle-purchases [post]
func (h *vehicleHandler) createPurchase(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateVehiclePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), *actor, req)
	if err != nil {
		respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

// listPurchases godoc
// @Summary List vehicle purchases for the tenant
// @Tags vehicles
// @Produce json
// @Success 200 {object} map[string][]domain.VehiclePurchase
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle-purchases [get]
func (h *vehicleHandler) listPurchases(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), *actor)
	if err != nil {
		respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehiclePurchases": purchases})
}

// createSale godoc
// @Summary Record a vehicle sale
// @Tags vehicles
// @Accept json
// @Produce json
// @Param sale body dto.CreateVehicleSaleRequest true "Sale details"
// @Success 201 {object} domain.VehicleSale
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle-sales [post]
func (h *vehicleHandler) createSale(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateVehicleSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), *actor, req)
	if err != nil {
		respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// listSales godoc
// @Summary List vehicle sales for the tenant
// @Tags vehicles
// @Produce json
// @Success 200 {object} map[string][]domain.VehicleSale
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle-sales [get]
func (h *vehicleHandler) listSales(c *gin.Context) {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), *actor)
	if err != nil {
		respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicleSales": sales})
}

func respondVehicleError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled vehicle service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
