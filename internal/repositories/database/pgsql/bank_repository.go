package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// NewBankRepository maps banks onto the generic reference-data repository.
// The is_default column carries the per-tenant singleton default flag.
func NewBankRepository(pool *pgxpool.Pool) *RefDataRepository[*domain.Bank] {
	return NewRefDataRepository(pool, TableSpec[*domain.Bank]{
		Table:         "banks",
		KeyColumn:     "account_number",
		Tenanted:      true,
		DefaultColumn: "is_default",
		DataColumns:   []string{"bank_name", "branch_name", "is_default"},
		DataValues: func(b *domain.Bank) []any {
			return []any{b.BankName, b.BranchName, b.IsDefault}
		},
		Scan: func(row pgx.Row) (*domain.Bank, error) {
			var b domain.Bank
			err := row.Scan(
				&b.CompanyID, &b.AccountNumber, &b.BankName, &b.BranchName, &b.IsDefault,
				&b.CreatedAt, &b.CreatedBy, &b.UpdatedAt, &b.UpdatedBy,
			)
			return &b, err
		},
	})
}
