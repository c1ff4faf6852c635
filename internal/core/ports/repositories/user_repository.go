package repositories

import (
	"context"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// UserRepository provides access to dealer staff accounts. Lookups exclude
// soft-deleted users and resolve the owning company's name.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SaveUser(ctx context.Context, user domain.User) error
}
