package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewLocationRepository maps storage yards and ports onto the generic
// repository.
func NewLocationRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.Location] {
	return NewRefDataRepository(pool, TableSpec[*domain.Location]{
		Table:       "locations",
		KeyColumn:   "name",
		Tenanted:    true,
		DataColumns: []string{},
		DataValues: func(*domain.Location) []any {
			return nil
		},
		Scan: func(row pgx.Row) (*domain.Location, error) {
			var l domain.Location
			err := row.Scan(
				&l.CompanyID, &l.Name,
				&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
			)
			return &l, err
		},
	})
}
