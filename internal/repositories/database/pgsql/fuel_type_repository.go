package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewFuelTypeRepository maps the global fuel-type catalog onto the generic
// repository. Fuel types have no tenant dimension.
func NewFuelTypeRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.FuelType] {
	return NewRefDataRepository(pool, TableSpec[*domain.FuelType]{
		Table:       "fuel_types",
		KeyColumn:   "code",
		Tenanted:    false,
		DataColumns: []string{"name"},
		DataValues: func(f *domain.FuelType) []any {
			return []any{f.Name}
		},
		Scan: func(row pgx.Row) (*domain.FuelType, error) {
			var f domain.FuelType
			err := row.Scan(
				&f.Code, &f.Name,
				&f.CreatedAt, &f.CreatedBy, &f.UpdatedAt, &f.UpdatedBy,
			)
			return &f, err
		},
	})
}
