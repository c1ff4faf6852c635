package services

import (
	"context"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// UserSvcFacade exposes dealer staff account lookups to the auth flows.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
