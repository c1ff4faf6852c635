package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewVehicleTypeRepository maps body-style classifications onto the generic
// repository.
func NewVehicleTypeRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.VehicleType] {
	return NewRefDataRepository(pool, TableSpec[*domain.VehicleType]{
		Table:       "vehicle_types",
		KeyColumn:   "vehicle_type",
		Tenanted:    true,
		DataColumns: []string{},
		DataValues: func(*domain.VehicleType) []any {
			return nil
		},
		Scan: func(row pgx.Row) (*domain.VehicleType, error) {
			var v domain.VehicleType
			err := row.Scan(
				&v.CompanyID, &v.Name,
				&v.CreatedAt, &v.CreatedBy, &v.UpdatedAt, &v.UpdatedBy,
			)
			return &v, err
		},
		References: []Reference{
			{Table: "vehicle_purchases", Column: "vehicle_type"},
		},
	})
}
