package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewMakerRepository maps vehicle manufacturers onto the generic repository.
func NewMakerRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.Maker] {
	return NewRefDataRepository(pool, TableSpec[*domain.Maker]{
		Table:       "makers",
		KeyColumn:   "name",
		Tenanted:    true,
		DataColumns: []string{},
		DataValues: func(*domain.Maker) []any {
			return nil
		},
		Scan: func(row pgx.Row) (*domain.Maker, error) {
			var m domain.Maker
			err := row.Scan(
				&m.CompanyID, &m.Name,
				&m.CreatedAt, &m.CreatedBy, &m.UpdatedAt, &m.UpdatedBy,
			)
			return &m, err
		},
		References: []Reference{
			{Table: "vehicle_purchases", Column: "maker"},
		},
	})
}
