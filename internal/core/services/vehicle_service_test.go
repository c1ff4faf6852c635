package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
)

// --- Mock VehiclePurchaseRepository ---
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) SavePurchase(ctx context.Context, purchase domain.VehiclePurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepo) FindPurchaseByID(ctx context.Context, companyID, purchaseID string) (*domain.VehiclePurchase, error) {
	args := m.Called(ctx, companyID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePurchase), args.Error(1)
}

func (m *MockPurchaseRepo) ListPurchases(ctx context.Context, companyID string) ([]domain.VehiclePurchase, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehiclePurchase), args.Error(1)
}

type VehiclePurchaseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPurchaseRepo
	service  *services.VehiclePurchaseService
}

func (suite *VehiclePurchaseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPurchaseRepo)
	suite.service = services.NewVehiclePurchaseService(suite.mockRepo)
}

func purchaseRequest() dto.CreateVehiclePurchaseRequest {
	return dto.CreateVehiclePurchaseRequest{
		ChassisNumber:    "NZE141-9016785",
		Maker:            "Toyota",
		VehicleType:      "Sedan",
		CounterpartyCode: "SUP01",
		PurchaseDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Price:            decimal.NewFromInt(450000),
		CurrencyCode:     "JPY",
	}
}

func (suite *VehiclePurchaseServiceTestSuite) TestCreatePurchase_StampsTenantAndAudit() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleStaff)

	suite.mockRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.VehiclePurchase) bool {
		return p.CompanyID == actor.CompanyID && p.PurchaseID != "" &&
			p.CreatedBy == actor.UserID && p.Price.Equal(decimal.NewFromInt(450000))
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, actor, purchaseRequest())

	suite.Require().NoError(err)
	suite.Equal(actor.CompanyID, purchase.CompanyID)
	suite.NotEmpty(purchase.PurchaseID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VehiclePurchaseServiceTestSuite) TestCreatePurchase_RequiresCompany() {
	ctx := context.Background()
	orphan := domain.AuthUser{UserID: "user-1", RoleID: domain.RoleAdmin}

	_, err := suite.service.CreatePurchase(ctx, orphan, purchaseRequest())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *VehiclePurchaseServiceTestSuite) TestListPurchases_EmptyIsNotNil() {
	ctx := context.Background()
	actor := actorWithRole(domain.RoleStaff)

	suite.mockRepo.On("ListPurchases", ctx, actor.CompanyID).Return(nil, nil).Once()

	purchases, err := suite.service.ListPurchases(ctx, actor)

	suite.Require().NoError(err)
	suite.NotNil(purchases)
	suite.Empty(purchases)
}

func TestVehiclePurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehiclePurchaseServiceTestSuite))
}
