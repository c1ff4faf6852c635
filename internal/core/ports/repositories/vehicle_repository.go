package repositories

import (
	"context"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// VehiclePurchaseRepository persists vehicle acquisition records.
type VehiclePurchaseRepository interface {
	SavePurchase(ctx context.Context, purchase domain.VehiclePurchase) error
	FindPurchaseByID(ctx context.Context, companyID, purchaseID string) (*domain.VehiclePurchase, error)
	ListPurchases(ctx context.Context, companyID string) ([]domain.VehiclePurchase, error)
}

// VehicleSaleRepository persists vehicle sale records.
type VehicleSaleRepository interface {
	SaveSale(ctx context.Context, sale domain.VehicleSale) error
	FindSaleByID(ctx context.Context, companyID, saleID string) (*domain.VehicleSale, error)
	ListSales(ctx context.Context, companyID string) ([]domain.VehicleSale, error)
}
