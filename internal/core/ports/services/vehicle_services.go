package services

import (
	"context"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
)

// VehiclePurchaseSvcFacade records and lists vehicle acquisitions for a tenant.
type VehiclePurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, actor domain.AuthUser, req dto.CreateVehiclePurchaseRequest) (*domain.VehiclePurchase, error)
	ListPurchases(ctx context.Context, actor domain.AuthUser) ([]domain.VehiclePurchase, error)
}

// VehicleSaleSvcFacade records and lists vehicle sales for a tenant.
type VehicleSaleSvcFacade interface {
	CreateSale(ctx context.Context, actor domain.AuthUser, req dto.CreateVehicleSaleRequest) (*domain.VehicleSale, error)
	ListSales(ctx context.Context, actor domain.AuthUser) ([]domain.VehicleSale, error)
}
