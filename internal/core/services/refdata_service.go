package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
	"github.com/kurumaops/dealer_mgmt_app/internal/platform/cache"
)

// RefDataConfig declares the behavior of one reference-data entity. A single
// config instance drives all four generic operations for that entity.
type RefDataConfig struct {
	// Label is the human-readable entity name used in error messages.
	Label string
	// Roles are the independent per-operation allow-lists.
	Roles domain.OperationRoles
	// Transform normalizes the natural-key value before storage and lookup
	// (e.g. trim+uppercase for codes). Nil means identity.
	Transform func(string) string
	// SingleDefault enforces the at-most-one-default-per-tenant invariant.
	SingleDefault bool
	// Global marks entities with no tenant dimension.
	Global bool
	// CacheTTL enables the list read-through cache when positive and a cache
	// is configured.
	CacheTTL time.Duration
}

// RefDataService is the generic tenant-scoped CRUD service. It enforces role
// membership before any storage call, applies the key transform, and delegates
// uniqueness, single-default and rename atomicity to the repository.
type RefDataService[T domain.RefEntity] struct {
	cfg   RefDataConfig
	repo  portsrepo.RefDataRepository[T]
	cache cache.Cache
}

// NewRefDataService builds the generic service for one entity. cache may be
// nil; the read path then always goes to storage.
func NewRefDataService[T domain.RefEntity](cfg RefDataConfig, repo portsrepo.RefDataRepository[T], c cache.Cache) *RefDataService[T] {
	return &RefDataService[T]{cfg: cfg, repo: repo, cache: c}
}

var _ portssvc.RefDataSvc[*domain.Bank] = (*RefDataService[*domain.Bank])(nil)

func (s *RefDataService[T]) List(ctx context.Context, actor domain.AuthUser) ([]T, error) {
	if err := s.authorize(ctx, actor, s.cfg.Roles.Read, "read"); err != nil {
		return nil, err
	}
	companyID, err := s.tenantScope(actor)
	if err != nil {
		return nil, err
	}

	if records, ok := s.cachedList(ctx, companyID); ok {
		return records, nil
	}

	records, err := s.repo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.cfg.Label, err)
	}
	if records == nil {
		records = []T{}
	}

	s.cacheList(ctx, companyID, records)
	return records, nil
}

func (s *RefDataService[T]) Create(ctx context.Context, actor domain.AuthUser, record T) (T, error) {
	var zero T
	if err := s.authorize(ctx, actor, s.cfg.Roles.Create, "create"); err != nil {
		return zero, err
	}
	companyID, err := s.tenantScope(actor)
	if err != nil {
		return zero, err
	}
	record.SetTenantID(companyID)

	key := s.transformKey(record.NaturalKey())
	if key == "" {
		return zero, fmt.Errorf("%w: %s key must not be empty", apperrors.ErrValidation, s.cfg.Label)
	}
	record.SetNaturalKey(key)

	// Fast-path duplicate check; the storage unique constraint is the actual
	// backstop against concurrent creates.
	if _, err := s.repo.Find(ctx, companyID, key); err == nil {
		return zero, fmt.Errorf("%w: %s %q already exists", apperrors.ErrDuplicate, s.cfg.Label, key)
	} else if !errorsIsNotFound(err) {
		return zero, fmt.Errorf("failed to check existing %s: %w", s.cfg.Label, err)
	}

	record.Audit().Stamp(actor.UserID, time.Now())

	resetDefault := s.cfg.SingleDefault && record.DefaultFlag()
	if err := s.repo.Insert(ctx, record, resetDefault); err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", s.cfg.Label, err)
	}

	s.invalidateList(ctx, companyID)
	middleware.GetLoggerFromCtx(ctx).Info("Created reference record",
		slog.String("entity", s.cfg.Label), slog.String("key", key))
	return record, nil
}

func (s *RefDataService[T]) Update(ctx context.Context, actor domain.AuthUser, currentKey string, record T) (T, error) {
	var zero T
	if err := s.authorize(ctx, actor, s.cfg.Roles.Update, "update"); err != nil {
		return zero, err
	}
	companyID, err := s.tenantScope(actor)
	if err != nil {
		return zero, err
	}
	record.SetTenantID(companyID)

	currentKey = s.transformKey(currentKey)
	if currentKey == "" {
		return zero, fmt.Errorf("%w: %s key must not be empty", apperrors.ErrValidation, s.cfg.Label)
	}
	newKey := s.transformKey(record.NaturalKey())
	if newKey == "" {
		newKey = currentKey
	}
	record.SetNaturalKey(newKey)

	existing, err := s.repo.Find(ctx, companyID, currentKey)
	if err != nil {
		if errorsIsNotFound(err) {
			return zero, fmt.Errorf("%w: %s %q", apperrors.ErrNotFound, s.cfg.Label, currentKey)
		}
		return zero, fmt.Errorf("failed to load %s for update: %w", s.cfg.Label, err)
	}

	// Creation audit carries over; only the update fields are stamped.
	record.Audit().CreatedAt = existing.Audit().CreatedAt
	record.Audit().CreatedBy = existing.Audit().CreatedBy
	record.Audit().Touch(actor.UserID, time.Now())

	if newKey != currentKey {
		// Composite primary keys cannot be mutated in place: a key change is
		// an atomic delete-of-old plus insert-of-new. The new-key collision
		// check runs before anything is deleted.
		if _, err := s.repo.Find(ctx, companyID, newKey); err == nil {
			return zero, fmt.Errorf("%w: %s %q already exists", apperrors.ErrDuplicate, s.cfg.Label, newKey)
		} else if !errorsIsNotFound(err) {
			return zero, fmt.Errorf("failed to check rename target %s: %w", s.cfg.Label, err)
		}
		if err := s.repo.Rename(ctx, currentKey, record); err != nil {
			return zero, fmt.Errorf("failed to rename %s: %w", s.cfg.Label, err)
		}
	} else {
		resetDefault := s.cfg.SingleDefault && record.DefaultFlag()
		if err := s.repo.Update(ctx, record, resetDefault); err != nil {
			return zero, fmt.Errorf("failed to update %s: %w", s.cfg.Label, err)
		}
	}

	s.invalidateList(ctx, companyID)
	middleware.GetLoggerFromCtx(ctx).Info("Updated reference record",
		slog.String("entity", s.cfg.Label), slog.String("key", newKey))
	return record, nil
}

func (s *RefDataService[T]) Delete(ctx context.Context, actor domain.AuthUser, key string) error {
	if err := s.authorize(ctx, actor, s.cfg.Roles.Delete, "delete"); err != nil {
		return err
	}
	companyID, err := s.tenantScope(actor)
	if err != nil {
		return err
	}

	key = s.transformKey(key)
	if key == "" {
		return fmt.Errorf("%w: %s key must not be empty", apperrors.ErrValidation, s.cfg.Label)
	}

	if _, err := s.repo.Find(ctx, companyID, key); err != nil {
		if errorsIsNotFound(err) {
			return fmt.Errorf("%w: %s %q", apperrors.ErrNotFound, s.cfg.Label, key)
		}
		return fmt.Errorf("failed to load %s for delete: %w", s.cfg.Label, err)
	}

	// Pre-flight reference count for a friendlier error; the RESTRICT foreign
	// keys at the storage layer remain the authoritative guard.
	refs, err := s.repo.CountReferences(ctx, companyID, key)
	if err != nil {
		return fmt.Errorf("failed to count references for %s: %w", s.cfg.Label, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: %s %q is referenced by %d record(s)", apperrors.ErrInUse, s.cfg.Label, key, refs)
	}

	if err := s.repo.Delete(ctx, companyID, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.cfg.Label, err)
	}

	s.invalidateList(ctx, companyID)
	middleware.GetLoggerFromCtx(ctx).Info("Deleted reference record",
		slog.String("entity", s.cfg.Label), slog.String("key", key))
	return nil
}

// authorize checks role membership. It runs before any storage access so a
// denied actor can never cause a query.
func (s *RefDataService[T]) authorize(ctx context.Context, actor domain.AuthUser, allowed domain.RoleSet, op string) error {
	if allowed.Contains(actor.RoleID) {
		return nil
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Operation denied by role check",
		slog.String("entity", s.cfg.Label),
		slog.String("operation", op),
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.RoleID)),
	)
	return fmt.Errorf("%w: role %s may not %s %s", apperrors.ErrForbidden, actor.RoleID, op, s.cfg.Label)
}

// tenantScope resolves the company predicate. Tenant-scoped entities require a
// company on the identity; its absence is a defect, not a wildcard.
func (s *RefDataService[T]) tenantScope(actor domain.AuthUser) (string, error) {
	if s.cfg.Global {
		return "", nil
	}
	if actor.CompanyID == "" {
		return "", fmt.Errorf("%w: identity has no company", apperrors.ErrForbidden)
	}
	return actor.CompanyID, nil
}

func (s *RefDataService[T]) transformKey(key string) string {
	if s.cfg.Transform == nil {
		return key
	}
	return s.cfg.Transform(key)
}

func (s *RefDataService[T]) cacheKey(companyID string) string {
	return "refdata:" + s.cfg.Label + ":" + companyID
}

// cachedList returns the cached list for the tenant. Any cache failure is a
// miss; the caller falls through to storage.
func (s *RefDataService[T]) cachedList(ctx context.Context, companyID string) ([]T, bool) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return nil, false
	}
	raw, ok := s.cache.Get(ctx, s.cacheKey(companyID))
	if !ok {
		return nil, false
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Discarding undecodable cache entry",
			slog.String("entity", s.cfg.Label), slog.String("error", err.Error()))
		s.cache.Invalidate(ctx, s.cacheKey(companyID))
		return nil, false
	}
	return records, true
}

func (s *RefDataService[T]) cacheList(ctx context.Context, companyID string, records []T) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return
	}
	s.cache.Set(ctx, s.cacheKey(companyID), raw, s.cfg.CacheTTL)
}

func (s *RefDataService[T]) invalidateList(ctx context.Context, companyID string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, s.cacheKey(companyID))
}
