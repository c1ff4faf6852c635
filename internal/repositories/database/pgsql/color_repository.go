package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewColorRepository maps exterior colors onto the generic repository.
func NewColorRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.Color] {
	return NewRefDataRepository(pool, TableSpec[*domain.Color]{
		Table:       "colors",
		KeyColumn:   "code",
		Tenanted:    true,
		DataColumns: []string{"name"},
		DataValues: func(c *domain.Color) []any {
			return []any{c.Name}
		},
		Scan: func(row pgx.Row) (*domain.Color, error) {
			var c domain.Color
			err := row.Scan(
				&c.CompanyID, &c.Code, &c.Name,
				&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
			)
			return &c, err
		},
	})
}
