package repositories

import (
	"context"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// RefDataRepository is the storage contract behind the generic reference-data
// controller. Implementations must scope every query by the record's tenant id
// (global entities pass an empty company id) and must return
// apperrors.ErrNotFound / ErrDuplicate / ErrInUse for the corresponding
// storage-level outcomes so the service layer can map them uniformly.
type RefDataRepository[T domain.RefEntity] interface {
	// List returns all records for the tenant in the entity's configured order.
	List(ctx context.Context, companyID string) ([]T, error)
	// Find returns the record addressed by the composite (companyID, key), or
	// apperrors.ErrNotFound.
	Find(ctx context.Context, companyID, key string) (T, error)
	// Insert persists a new record. When resetDefault is set, the insert and
	// the clearing of every other record's default flag for the same tenant
	// happen in one transaction. A composite-key collision at the storage
	// layer yields apperrors.ErrDuplicate.
	Insert(ctx context.Context, record T, resetDefault bool) error
	// Update rewrites the non-key fields of the record addressed by its
	// composite key, with the same resetDefault semantics as Insert.
	Update(ctx context.Context, record T, resetDefault bool) error
	// Rename atomically deletes the record under oldKey and inserts record
	// under its new key, all-or-nothing. The caller is responsible for
	// carrying over creation audit fields.
	Rename(ctx context.Context, oldKey string, record T) error
	// Delete removes the record addressed by the composite key. A foreign-key
	// restriction yields apperrors.ErrInUse.
	Delete(ctx context.Context, companyID, key string) error
	// CountReferences counts rows in dependent transactional tables that
	// reference the record. Used as a pre-flight check before Delete.
	CountReferences(ctx context.Context, companyID, key string) (int64, error)
}
