package services

import (
	"context"
	"fmt"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portsrepo "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
)

// UserService provides dealer staff account lookups for the auth flows.
type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
