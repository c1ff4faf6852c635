package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
)

// VehiclePurchaseService records vehicle acquisitions for a tenant.
type VehiclePurchaseService struct {
	purchaseRepo portsrepo.VehiclePurchaseRepository
}

func NewVehiclePurchaseService(purchaseRepo portsrepo.VehiclePurchaseRepository) *VehiclePurchaseService {
	return &VehiclePurchaseService{purchaseRepo: purchaseRepo}
}

var _ portssvc.VehiclePurchaseSvcFacade = (*VehiclePurchaseService)(nil)

func (s *VehiclePurchaseService) CreatePurchase(ctx context.Context, actor domain.AuthUser, req dto.CreateVehiclePurchaseRequest) (*domain.VehiclePurchase, error) {
	if actor.CompanyID == "" {
		return nil, fmt.Errorf("%w: identity has no company", apperrors.ErrForbidden)
	}

	purchase := domain.VehiclePurchase{
		PurchaseID:       uuid.NewString(),
		CompanyID:        actor.CompanyID,
		ChassisNumber:    req.ChassisNumber,
		Maker:            req.Maker,
		VehicleType:      req.VehicleType,
		CounterpartyCode: req.CounterpartyCode,
		PurchaseDate:     req.PurchaseDate,
		Price:            req.Price,
		CurrencyCode:     req.CurrencyCode,
	}
	purchase.Stamp(actor.UserID, time.Now())

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create vehicle purchase: %w", err)
	}
	return &purchase, nil
}

func (s *VehiclePurchaseService) ListPurchases(ctx context.Context, actor domain.AuthUser) ([]domain.VehiclePurchase, error) {
	if actor.CompanyID == "" {
		return nil, fmt.Errorf("%w: identity has no company", apperrors.ErrForbidden)
	}
	purchases, err := s.purchaseRepo.ListPurchases(ctx, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle purchases: %w", err)
	}
	if purchases == nil {
		purchases = []domain.VehiclePurchase{}
	}
	return purchases, nil
}

// VehicleSaleService records vehicle sales for a tenant.
type VehicleSaleService struct {
	saleRepo portsrepo.VehicleSaleRepository
}

func NewVehicleSaleService(saleRepo portsrepo.VehicleSaleRepository) *VehicleSaleService {
	return &VehicleSaleService{saleRepo: saleRepo}
}

var _ portssvc.VehicleSaleSvcFacade = (*VehicleSaleService)(nil)

func (s *VehicleSaleService) CreateSale(ctx context.Context, actor domain.AuthUser, req dto.CreateVehicleSaleRequest) (*domain.VehicleSale, error) {
	if actor.CompanyID == "" {
		return nil, fmt.Errorf("%w: identity has no company", apperrors.ErrForbidden)
	}

	sale := domain.VehicleSale{
		SaleID:           uuid.NewString(),
		CompanyID:        actor.CompanyID,
		ChassisNumber:    req.ChassisNumber,
		CounterpartyCode: req.CounterpartyCode,
		SaleDate:         req.SaleDate,
		Price:            req.Price,
		CurrencyCode:     req.CurrencyCode,
	}
	sale.Stamp(actor.UserID, time.Now())

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create vehicle sale: %w", err)
	}
	return &sale, nil
}

func (s *VehicleSaleService) ListSales(ctx context.Context, actor domain.AuthUser) ([]domain.VehicleSale, error) {
	if actor.CompanyID == "" {
		return nil, fmt.Errorf("%w: identity has no company", apperrors.ErrForbidden)
	}
	sales, err := s.saleRepo.ListSales(ctx, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle sales: %w", err)
	}
	if sales == nil {
		sales = []domain.VehicleSale{}
	}
	return sales, nil
}
