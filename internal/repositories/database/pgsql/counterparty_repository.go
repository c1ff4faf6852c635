package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewCounterpartyRepository maps counterparties onto the generic repository.
// Every transactional table that names a counterparty participates in the
// delete reference count; the RESTRICT foreign keys remain the hard guard.
func NewCounterpartyRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.Counterparty] {
	return NewRefDataRepository(pool, TableSpec[*domain.Counterparty]{
		Table:       "counterparties",
		KeyColumn:   "code",
		Tenanted:    true,
		DataColumns: []string{"name", "kind"},
		DataValues: func(c *domain.Counterparty) []any {
			return []any{c.Name, string(c.Kind)}
		},
		Scan: func(row pgx.Row) (*domain.Counterparty, error) {
			var c domain.Counterparty
			err := row.Scan(
				&c.CompanyID, &c.Code, &c.Name, &c.Kind,
				&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
			)
			return &c, err
		},
		References: []Reference{
			{Table: "vehicle_purchases", Column: "counterparty_code"},
			{Table: "vehicle_sales", Column: "counterparty_code"},
			{Table: "shipments", Column: "counterparty_code"},
			{Table: "repairs", Column: "counterparty_code"},
			{Table: "local_transports", Column: "counterparty_code"},
			{Table: "invoices", Column: "counterparty_code"},
		},
	})
}
