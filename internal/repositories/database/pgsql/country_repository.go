package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewCountryRepository maps export destination countries onto the generic
// repository.
func NewCountryRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.Country] {
	return NewRefDataRepository(pool, TableSpec[*domain.Country]{
		Table:       "countries",
		KeyColumn:   "code",
		Tenanted:    true,
		DataColumns: []string{"name"},
		DataValues: func(c *domain.Country) []any {
			return []any{c.Name}
		},
		Scan: func(row pgx.Row) (*domain.Country, error) {
			var c domain.Country
			err := row.Scan(
				&c.CompanyID, &c.Code, &c.Name,
				&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
			)
			return &c, err
		},
		References: []Reference{
			{Table: "shipments", Column: "destination_country"},
		},
	})
}
