package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/platform/cache"
)

// --- Mock RefDataRepository ---
type MockRefRepo[T domain.RefEntity] struct {
	mock.Mock
}

func (m *MockRefRepo[T]) List(ctx context.Context, companyID string) ([]T, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRefRepo[T]) Find(ctx context.Context, companyID, key string) (T, error) {
	args := m.Called(ctx, companyID, key)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRefRepo[T]) Insert(ctx context.Context, record T, resetDefault bool) error {
	args := m.Called(ctx, record, resetDefault)
	return args.Error(0)
}

func (m *MockRefRepo[T]) Update(ctx context.Context, record T, resetDefault bool) error {
	args := m.Called(ctx, record, resetDefault)
	return args.Error(0)
}

func (m *MockRefRepo[T]) Rename(ctx context.Context, oldKey string, record T) error {
	args := m.Called(ctx, oldKey, record)
	return args.Error(0)
}

func (m *MockRefRepo[T]) Delete(ctx context.Context, companyID, key string) error {
	args := m.Called(ctx, companyID, key)
	return args.Error(0)
}

func (m *MockRefRepo[T]) CountReferences(ctx context.Context, companyID, key string) (int64, error) {
	args := m.Called(ctx, companyID, key)
	return args.Get(0).(int64), args.Error(1)
}

func bankConfig() services.RefDataConfig {
	return services.RefDataConfig{
		Label: "bank",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AnyRole,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOnly,
		},
		SingleDefault: true,
	}
}

func actorWithRole(role domain.Role) domain.AuthUser {
	return domain.AuthUser{
		UserID:    "user-1",
		CompanyID: "company-1",
		RoleID:    role,
	}
}

type RefDataServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRefRepo[*domain.Bank]
	service  *services.RefDataService[*domain.Bank]
}

func (suite *RefDataServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRefRepo[*domain.Bank])
	suite.service = services.NewRefDataService[*domain.Bank](bankConfig(), suite.mockRepo, nil)
}

func (suite *RefDataServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleStaff)

	suite.mockRepo.On("Find", ctx, "company-1", "1234567").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("Insert", ctx, mock.MatchedBy(func(b *domain.Bank) bool {
		return b.CompanyID == "company-1" && b.AccountNumber == "1234567" &&
			b.CreatedBy == actor.UserID && b.UpdatedBy == actor.UserID
	}), false).Return(nil).Once()

	created, err := suite.service.Create(ctx, actor, &domain.Bank{AccountNumber: "1234567", BankName: "Mizuho"})

	suite.Require().NoError(err)
	suite.Equal("company-1", created.CompanyID)
	suite.False(created.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestCreate_DuplicateKeyConflict() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleAdmin)

	suite.mockRepo.On("Find", ctx, "company-1", "1234567").
		Return(&domain.Bank{CompanyID: "company-1", AccountNumber: "1234567"}, nil).Once()

	_, err := suite.service.Create(ctx, actor, &domain.Bank{AccountNumber: "1234567", BankName: "Mizuho"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestCreate_NewDefaultResetsOthers() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleManager)

	suite.mockRepo.On("Find", ctx, "company-1", "7654321").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Bank"), true).Return(nil).Once()

	_, err := suite.service.Create(ctx, actor, &domain.Bank{AccountNumber: "7654321", BankName: "SMBC", IsDefault: true})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestRoleGating_NeverTouchesStorage() {
	ctx := context.Background()

	// Staff may create banks but not update or delete them.
	err := suite.service.Delete(ctx, actorWithRole(domain.RoleStaff), "1234567")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.Update(ctx, actorWithRole(domain.RoleStaff), "1234567", &domain.Bank{AccountNumber: "1234567"})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	err = suite.service.Delete(ctx, actorWithRole(domain.RoleManager), "1234567")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.AssertNotCalled(suite.T(), "Find", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleAdmin)

	suite.mockRepo.On("Find", ctx, "company-1", "0000000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Update(ctx, actor, "0000000", &domain.Bank{AccountNumber: "0000000"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestUpdate_RenameConflictLeavesOldUntouched() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleAdmin)

	existing := &domain.Bank{CompanyID: "company-1", AccountNumber: "1111111"}
	collision := &domain.Bank{CompanyID: "company-1", AccountNumber: "2222222"}

	suite.mockRepo.On("Find", ctx, "company-1", "1111111").Return(existing, nil).Once()
	suite.mockRepo.On("Find", ctx, "company-1", "2222222").Return(collision, nil).Once()

	_, err := suite.service.Update(ctx, actor, "1111111", &domain.Bank{AccountNumber: "2222222", BankName: "Mizuho"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "Rename", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestUpdate_RenamePreservesCreationAudit() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleAdmin)

	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	existing := &domain.Bank{CompanyID: "company-1", AccountNumber: "1111111"}
	existing.CreatedAt = createdAt
	existing.CreatedBy = "original-author"

	suite.mockRepo.On("Find", ctx, "company-1", "1111111").Return(existing, nil).Once()
	suite.mockRepo.On("Find", ctx, "company-1", "2222222").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("Rename", ctx, "1111111", mock.MatchedBy(func(b *domain.Bank) bool {
		return b.AccountNumber == "2222222" &&
			b.CreatedAt.Equal(createdAt) && b.CreatedBy == "original-author" &&
			b.UpdatedBy == actor.UserID
	})).Return(nil).Once()

	updated, err := suite.service.Update(ctx, actor, "1111111", &domain.Bank{AccountNumber: "2222222", BankName: "Mizuho"})

	suite.Require().NoError(err)
	suite.Equal("2222222", updated.AccountNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestDelete_InUseGuard() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleAdmin)

	suite.mockRepo.On("Find", ctx, "company-1", "1111111").
		Return(&domain.Bank{CompanyID: "company-1", AccountNumber: "1111111"}, nil).Once()
	suite.mockRepo.On("CountReferences", ctx, "company-1", "1111111").Return(int64(2), nil).Once()

	err := suite.service.Delete(ctx, actor, "1111111")

	suite.ErrorIs(err, apperrors.ErrInUse)
	suite.mockRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestDelete_Success() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleAdmin)

	suite.mockRepo.On("Find", ctx, "company-1", "1111111").
		Return(&domain.Bank{CompanyID: "company-1", AccountNumber: "1111111"}, nil).Once()
	suite.mockRepo.On("CountReferences", ctx, "company-1", "1111111").Return(int64(0), nil).Once()
	suite.mockRepo.On("Delete", ctx, "company-1", "1111111").Return(nil).Once()

	suite.Require().NoError(suite.service.Delete(ctx, actor, "1111111"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestTenantScope_RequiresCompany() {
	ctx := context.Background()
	orphan := domain.AuthUser{UserID: "user-1", RoleID: domain.RoleAdmin}

	_, err := suite.service.List(ctx, orphan)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "List", mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestList_ScopedByActorCompany() {
	ctx := context.Background()
	records := []*domain.Bank{{CompanyID: "company-1", AccountNumber: "1234567"}}

	suite.mockRepo.On("List", ctx, "company-1").Return(records, nil).Once()

	got, err := suite.service.List(ctx, actorWithRole(domain.RoleStaff))
	suite.Require().NoError(err)
	suite.Equal(records, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRefDataServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RefDataServiceTestSuite))
}

// Key transforms run before every lookup so variants of the same spelling
// address one record.
func TestRefDataService_KeyTransform(t *testing.T) {
	mockRepo := new(MockRefRepo[*domain.Location])
	svc := services.NewRefDataService[*domain.Location](services.RefDataConfig{
		Label: "location",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AnyRole,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOnly,
		},
		Transform: func(k string) string {
			return services.NormalizeCode(k)
		},
	}, mockRepo, nil)

	ctx := context.Background()
	actor := actorWithRole(domain.RoleStaff)

	mockRepo.On("Find", ctx, "company-1", "TOKYO").Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("Insert", ctx, mock.MatchedBy(func(l *domain.Location) bool {
		return l.Name == "TOKYO"
	}), false).Return(nil).Once()

	created, err := svc.Create(ctx, actor, &domain.Location{Name: "  tokyo "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "TOKYO" {
		t.Fatalf("expected normalized key, got %q", created.Name)
	}
	mockRepo.AssertExpectations(t)
}

// List results are served from the cache until invalidated by a write.
func TestRefDataService_ListCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	listCache := cache.NewRedisCacheFromClient(client, slog.Default())

	mockRepo := new(MockRefRepo[*domain.Bank])
	cfg := bankConfig()
	cfg.CacheTTL = time.Minute
	svc := services.NewRefDataService[*domain.Bank](cfg, mockRepo, listCache)

	ctx := context.Background()
	actor := actorWithRole(domain.RoleStaff)
	records := []*domain.Bank{{CompanyID: "company-1", AccountNumber: "1234567", BankName: "Mizuho"}}

	mockRepo.On("List", ctx, "company-1").Return(records, nil).Once()

	for i := 0; i < 3; i++ {
		got, err := svc.List(ctx, actor)
		if err != nil {
			t.Fatalf("list %d: %v", i, err)
		}
		if len(got) != 1 || got[0].AccountNumber != "1234567" {
			t.Fatalf("list %d: unexpected records %+v", i, got)
		}
	}
	mockRepo.AssertNumberOfCalls(t, "List", 1)

	// Entries age out with the configured TTL.
	mr.FastForward(2 * time.Minute)
	mockRepo.On("List", ctx, "company-1").Return(records, nil).Once()
	if _, err := svc.List(ctx, actor); err != nil {
		t.Fatalf("list after expiry: %v", err)
	}
	mockRepo.AssertNumberOfCalls(t, "List", 2)
}
