package services

import (
	"context"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// RefDataSvc is the generic reference-data service contract consumed by the
// generic handlers. All operations authorize the actor against the entity's
// per-operation role sets before touching storage, and scope every storage
// call by the actor's company (global entities excepted).
type RefDataSvc[T domain.RefEntity] interface {
	List(ctx context.Context, actor domain.AuthUser) ([]T, error)
	Create(ctx context.Context, actor domain.AuthUser, record T) (T, error)
	// Update rewrites the record currently addressed by currentKey. When the
	// record carries a different natural key, the operation is an atomic
	// rename that preserves creation audit fields.
	Update(ctx context.Context, actor domain.AuthUser, currentKey string, record T) (T, error)
	Delete(ctx context.Context, actor domain.AuthUser, key string) error
}
