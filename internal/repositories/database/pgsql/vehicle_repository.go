package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
)

// PgxVehiclePurchaseRepository persists vehicle acquisition records.
type PgxVehiclePurchaseRepository struct {
	BaseRepository
}

func NewVehiclePurchaseRepository(pool *pgxpool.Pool) *PgxVehiclePurchaseRepository {
	return &PgxVehiclePurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VehiclePurchaseRepository = (*PgxVehiclePurchaseRepository)(nil)

const purchaseColumns = `purchase_id, company_id, chassis_number, maker, vehicle_type,
	counterparty_code, purchase_date, price, currency_code,
	created_at, created_by, updated_at, updated_by`

func scanPurchase(row pgx.Row) (domain.VehiclePurchase, error) {
	var p domain.VehiclePurchase
	err := row.Scan(
		&p.PurchaseID, &p.CompanyID, &p.ChassisNumber, &p.Maker, &p.VehicleType,
		&p.CounterpartyCode, &p.PurchaseDate, &p.Price, &p.CurrencyCode,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	return p, err
}

func (r *PgxVehiclePurchaseRepository) SavePurchase(ctx context.Context, purchase domain.VehiclePurchase) error {
	query := fmt.Sprintf(`INSERT INTO vehicle_purchases (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, purchaseColumns)
	_, err := r.Pool.Exec(ctx, query,
		purchase.PurchaseID, purchase.CompanyID, purchase.ChassisNumber, purchase.Maker,
		purchase.VehicleType, purchase.CounterpartyCode, purchase.PurchaseDate,
		purchase.Price, purchase.CurrencyCode,
		purchase.CreatedAt, purchase.CreatedBy, purchase.UpdatedAt, purchase.UpdatedBy,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, apperrors.ErrInUse) {
			// A foreign-key failure on insert means a referenced entity
			// (counterparty, maker, ...) does not exist for this tenant.
			return fmt.Errorf("%w: unknown reference on vehicle purchase", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save vehicle purchase %s: %w", purchase.PurchaseID, mapped)
	}
	return nil
}

func (r *PgxVehiclePurchaseRepository) FindPurchaseByID(ctx context.Context, companyID, purchaseID string) (*domain.VehiclePurchase, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_purchases WHERE company_id = $1 AND purchase_id = $2`, purchaseColumns)
	purchase, err := scanPurchase(r.Pool.QueryRow(ctx, query, companyID, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle purchase %s: %w", purchaseID, err)
	}
	return &purchase, nil
}

func (r *PgxVehiclePurchaseRepository) ListPurchases(ctx context.Context, companyID string) ([]domain.VehiclePurchase, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_purchases WHERE company_id = $1 ORDER BY purchase_date DESC, purchase_id`, purchaseColumns)
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle purchases: %w", err)
	}
	defer rows.Close()

	purchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VehiclePurchase, error) {
		return scanPurchase(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vehicle purchases: %w", err)
	}
	return purchases, nil
}

// PgxVehicleSaleRepository persists vehicle sale records.
type PgxVehicleSaleRepository struct {
	BaseRepository
}

func NewVehicleSaleRepository(pool *pgxpool.Pool) *PgxVehicleSaleRepository {
	return &PgxVehicleSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VehicleSaleRepository = (*PgxVehicleSaleRepository)(nil)

const saleColumns = `sale_id, company_id, chassis_number, counterparty_code, sale_date,
	price, currency_code, created_at, created_by, updated_at, updated_by`

func scanSale(row pgx.Row) (domain.VehicleSale, error) {
	var s domain.VehicleSale
	err := row.Scan(
		&s.SaleID, &s.CompanyID, &s.ChassisNumber, &s.CounterpartyCode, &s.SaleDate,
		&s.Price, &s.CurrencyCode,
		&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
	)
	return s, err
}

func (r *PgxVehicleSaleRepository) SaveSale(ctx context.Context, sale domain.VehicleSale) error {
	query := fmt.Sprintf(`INSERT INTO vehicle_sales (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, saleColumns)
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID, sale.CompanyID, sale.ChassisNumber, sale.CounterpartyCode, sale.SaleDate,
		sale.Price, sale.CurrencyCode,
		sale.CreatedAt, sale.CreatedBy, sale.UpdatedAt, sale.UpdatedBy,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, apperrors.ErrInUse) {
			return fmt.Errorf("%w: unknown reference on vehicle sale", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save vehicle sale %s: %w", sale.SaleID, mapped)
	}
	return nil
}

func (r *PgxVehicleSaleRepository) FindSaleByID(ctx context.Context, companyID, saleID string) (*domain.VehicleSale, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_sales WHERE company_id = $1 AND sale_id = $2`, saleColumns)
	sale, err := scanSale(r.Pool.QueryRow(ctx, query, companyID, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle sale %s: %w", saleID, err)
	}
	return &sale, nil
}

func (r *PgxVehicleSaleRepository) ListSales(ctx context.Context, companyID string) ([]domain.VehicleSale, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicle_sales WHERE company_id = $1 ORDER BY sale_date DESC, sale_id`, saleColumns)
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle sales: %w", err)
	}
	defer rows.Close()

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VehicleSale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vehicle sales: %w", err)
	}
	return sales, nil
}
