package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
)

// Reference names a dependent table column that points at a reference entity.
// Rows matching the composite key block deletion.
type Reference struct {
	Table  string
	Column string
}

// TableSpec describes how one reference entity maps onto its table. One generic
// repository instance per entity replaces the per-entity copy-paste repos.
type TableSpec[T domain.RefEntity] struct {
	Table     string
	KeyColumn string
	// Tenanted tables carry a company_id column; global tables do not.
	Tenanted bool
	// DefaultColumn names the per-tenant singleton flag column, empty when the
	// entity has none.
	DefaultColumn string
	// OrderBy is the list ordering; defaults to the key column ascending.
	OrderBy string
	// DataColumns are the non-key, non-audit columns, in the order DataValues
	// yields them.
	DataColumns []string
	DataValues  func(record T) []any
	// Scan reads one full row in column order: [company_id,] key, data...,
	// created_at, created_by, updated_at, updated_by.
	Scan       func(row pgx.Row) (T, error)
	References []Reference
}

// RefDataRepository is the pgx implementation of the generic reference-data
// storage contract.
type RefDataRepository[T domain.RefEntity] struct {
	BaseRepository
	spec TableSpec[T]
}

// NewRefDataRepository builds the generic repository for one entity table.
func NewRefDataRepository[T domain.RefEntity](pool *pgxpool.Pool, spec TableSpec[T]) *RefDataRepository[T] {
	if spec.OrderBy == "" {
		spec.OrderBy = spec.KeyColumn + " ASC"
	}
	return &RefDataRepository[T]{
		BaseRepository: BaseRepository{Pool: pool},
		spec:           spec,
	}
}

var _ portsrepo.RefDataRepository[*domain.Bank] = (*RefDataRepository[*domain.Bank])(nil)

func (r *RefDataRepository[T]) columns() []string {
	cols := make([]string, 0, len(r.spec.DataColumns)+6)
	if r.spec.Tenanted {
		cols = append(cols, "company_id")
	}
	cols = append(cols, r.spec.KeyColumn)
	cols = append(cols, r.spec.DataColumns...)
	cols = append(cols, "created_at", "created_by", "updated_at", "updated_by")
	return cols
}

func (r *RefDataRepository[T]) values(record T) []any {
	audit := record.Audit()
	vals := make([]any, 0, len(r.spec.DataColumns)+6)
	if r.spec.Tenanted {
		vals = append(vals, record.TenantID())
	}
	vals = append(vals, record.NaturalKey())
	vals = append(vals, r.spec.DataValues(record)...)
	vals = append(vals, audit.CreatedAt, audit.CreatedBy, audit.UpdatedAt, audit.UpdatedBy)
	return vals
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// keyPredicate builds the composite-key WHERE clause and its arguments,
// starting at placeholder $1. Tenant scoping is part of the predicate, never
// optional, for tenanted tables.
func (r *RefDataRepository[T]) keyPredicate(companyID, key string) (string, []any) {
	if r.spec.Tenanted {
		return fmt.Sprintf("company_id = $1 AND %s = $2", r.spec.KeyColumn), []any{companyID, key}
	}
	return fmt.Sprintf("%s = $1", r.spec.KeyColumn), []any{key}
}

func (r *RefDataRepository[T]) List(ctx context.Context, companyID string) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(r.columns(), ", "), r.spec.Table)
	var args []any
	if r.spec.Tenanted {
		query += " WHERE company_id = $1"
		args = append(args, companyID)
	}
	query += " ORDER BY " + r.spec.OrderBy

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.spec.Table, err)
	}
	defer rows.Close()

	var records []T
	for rows.Next() {
		record, err := r.spec.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.spec.Table, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading %s rows: %w", r.spec.Table, err)
	}
	return records, nil
}

func (r *RefDataRepository[T]) Find(ctx context.Context, companyID, key string) (T, error) {
	var zero T
	predicate, args := r.keyPredicate(companyID, key)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(r.columns(), ", "), r.spec.Table, predicate)

	record, err := r.spec.Scan(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, apperrors.ErrNotFound
		}
		return zero, fmt.Errorf("failed to find %s by key %s: %w", r.spec.Table, key, err)
	}
	return record, nil
}

func (r *RefDataRepository[T]) Insert(ctx context.Context, record T, resetDefault bool) error {
	if resetDefault && r.spec.DefaultColumn != "" {
		tx, err := r.Begin(ctx)
		if err != nil {
			return err
		}
		defer r.Rollback(ctx, tx)

		if err := r.clearOtherDefaults(ctx, tx, record.TenantID(), record.NaturalKey()); err != nil {
			return err
		}
		if err := r.insertRow(ctx, tx, record); err != nil {
			return err
		}
		return r.Commit(ctx, tx)
	}
	return r.insertRow(ctx, r.Pool, record)
}

func (r *RefDataRepository[T]) Update(ctx context.Context, record T, resetDefault bool) error {
	if resetDefault && r.spec.DefaultColumn != "" {
		tx, err := r.Begin(ctx)
		if err != nil {
			return err
		}
		defer r.Rollback(ctx, tx)

		if err := r.clearOtherDefaults(ctx, tx, record.TenantID(), record.NaturalKey()); err != nil {
			return err
		}
		if err := r.updateRow(ctx, tx, record); err != nil {
			return err
		}
		return r.Commit(ctx, tx)
	}
	return r.updateRow(ctx, r.Pool, record)
}

// Rename deletes the row under oldKey and inserts the record under its new key
// in one transaction; a failure at any step leaves the old row intact.
func (r *RefDataRepository[T]) Rename(ctx context.Context, oldKey string, record T) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	predicate, args := r.keyPredicate(record.TenantID(), oldKey)
	tag, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s", r.spec.Table, predicate), args...)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s during rename: %w", r.spec.Table, oldKey, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if r.spec.DefaultColumn != "" && record.DefaultFlag() {
		if err := r.clearOtherDefaults(ctx, tx, record.TenantID(), record.NaturalKey()); err != nil {
			return err
		}
	}
	if err := r.insertRow(ctx, tx, record); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *RefDataRepository[T]) Delete(ctx context.Context, companyID, key string) error {
	predicate, args := r.keyPredicate(companyID, key)
	tag, err := r.Pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s", r.spec.Table, predicate), args...)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.spec.Table, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountReferences sums matching rows across all declared dependent tables.
func (r *RefDataRepository[T]) CountReferences(ctx context.Context, companyID, key string) (int64, error) {
	var total int64
	for _, ref := range r.spec.References {
		var query string
		var args []any
		if r.spec.Tenanted {
			query = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE company_id = $1 AND %s = $2", ref.Table, ref.Column)
			args = []any{companyID, key}
		} else {
			query = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", ref.Table, ref.Column)
			args = []any{key}
		}
		var count int64
		if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to count references in %s: %w", ref.Table, err)
		}
		total += count
	}
	return total, nil
}

func (r *RefDataRepository[T]) insertRow(ctx context.Context, q querier, record T) error {
	cols := r.columns()
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.spec.Table, strings.Join(cols, ", "), placeholders(len(cols)))
	if _, err := q.Exec(ctx, query, r.values(record)...); err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert into %s: %w", r.spec.Table, err)
	}
	return nil
}

func (r *RefDataRepository[T]) updateRow(ctx context.Context, q querier, record T) error {
	audit := record.Audit()
	set := make([]string, 0, len(r.spec.DataColumns)+2)
	args := make([]any, 0, len(r.spec.DataColumns)+4)
	idx := 1
	for _, col := range r.spec.DataColumns {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		idx++
	}
	args = append(args, r.spec.DataValues(record)...)
	set = append(set, fmt.Sprintf("updated_at = $%d", idx), fmt.Sprintf("updated_by = $%d", idx+1))
	args = append(args, audit.UpdatedAt, audit.UpdatedBy)
	idx += 2

	var predicate string
	if r.spec.Tenanted {
		predicate = fmt.Sprintf("company_id = $%d AND %s = $%d", idx, r.spec.KeyColumn, idx+1)
		args = append(args, record.TenantID(), record.NaturalKey())
	} else {
		predicate = fmt.Sprintf("%s = $%d", r.spec.KeyColumn, idx)
		args = append(args, record.NaturalKey())
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", r.spec.Table, strings.Join(set, ", "), predicate)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.spec.Table, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// clearOtherDefaults drops the singleton flag on every other record of the
// tenant. Always runs in the same transaction as the write that sets the new
// default, so callers never observe zero or two defaults.
func (r *RefDataRepository[T]) clearOtherDefaults(ctx context.Context, q querier, companyID, keepKey string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = FALSE WHERE company_id = $1 AND %s <> $2 AND %s",
		r.spec.Table, r.spec.DefaultColumn, r.spec.KeyColumn, r.spec.DefaultColumn)
	if _, err := q.Exec(ctx, query, companyID, keepKey); err != nil {
		return fmt.Errorf("failed to clear default flags on %s: %w", r.spec.Table, err)
	}
	return nil
}
