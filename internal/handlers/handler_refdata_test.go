package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
	"github.com/kurumaops/dealer_mgmt_app/internal/handlers"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
	"github.com/kurumaops/dealer_mgmt_app/pkg/config"
)

// fakeBankRepo is an in-memory stand-in for the pgsql repository so the full
// middleware -> handler -> service chain runs against real semantics.
type fakeBankRepo struct {
	records map[string]*domain.Bank
	refs    map[string]int64
}

func newFakeBankRepo() *fakeBankRepo {
	return &fakeBankRepo{records: map[string]*domain.Bank{}, refs: map[string]int64{}}
}

func (r *fakeBankRepo) compositeKey(companyID, key string) string {
	return companyID + "/" + key
}

func (r *fakeBankRepo) List(ctx context.Context, companyID string) ([]*domain.Bank, error) {
	var out []*domain.Bank
	for _, b := range r.records {
		if b.CompanyID == companyID {
			copied := *b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
	return out, nil
}

func (r *fakeBankRepo) Find(ctx context.Context, companyID, key string) (*domain.Bank, error) {
	b, ok := r.records[r.compositeKey(companyID, key)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBankRepo) Insert(ctx context.Context, record *domain.Bank, resetDefault bool) error {
	ck := r.compositeKey(record.CompanyID, record.AccountNumber)
	if _, exists := r.records[ck]; exists {
		return apperrors.ErrDuplicate
	}
	if resetDefault {
		r.clearDefaults(record.CompanyID)
	}
	copied := *record
	r.records[ck] = &copied
	return nil
}

func (r *fakeBankRepo) Update(ctx context.Context, record *domain.Bank, resetDefault bool) error {
	ck := r.compositeKey(record.CompanyID, record.AccountNumber)
	if _, exists := r.records[ck]; !exists {
		return apperrors.ErrNotFound
	}
	if resetDefault {
		r.clearDefaults(record.CompanyID)
	}
	copied := *record
	r.records[ck] = &copied
	return nil
}

func (r *fakeBankRepo) Rename(ctx context.Context, oldKey string, record *domain.Bank) error {
	oldCK := r.compositeKey(record.CompanyID, oldKey)
	if _, exists := r.records[oldCK]; !exists {
		return apperrors.ErrNotFound
	}
	newCK := r.compositeKey(record.CompanyID, record.AccountNumber)
	if _, exists := r.records[newCK]; exists {
		return apperrors.ErrDuplicate
	}
	delete(r.records, oldCK)
	copied := *record
	r.records[newCK] = &copied
	return nil
}

func (r *fakeBankRepo) Delete(ctx context.Context, companyID, key string) error {
	ck := r.compositeKey(companyID, key)
	if _, exists := r.records[ck]; !exists {
		return apperrors.ErrNotFound
	}
	delete(r.records, ck)
	return nil
}

func (r *fakeBankRepo) CountReferences(ctx context.Context, companyID, key string) (int64, error) {
	return r.refs[r.compositeKey(companyID, key)], nil
}

func (r *fakeBankRepo) clearDefaults(companyID string) {
	for _, b := range r.records {
		if b.CompanyID == companyID {
			b.IsDefault = false
		}
	}
}

// --- Test Suite ---
type BankHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	repo     *fakeBankRepo
	tokenSvc portssvc.TokenSvcFacade
}

func (suite *BankHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.tokenSvc = services.NewTokenService(&config.Config{
		JWTSecret:          "bank-handler-test-secret",
		JWTIssuer:          "dms-backend-test",
		AccessTokenExpiry:  "1h",
		RefreshTokenExpiry: time.Hour,
	}, nil)

	suite.repo = newFakeBankRepo()
	bankService := services.NewRefDataService[*domain.Bank](services.RefDataConfig{
		Label: "bank",
		Roles: domain.OperationRoles{
			Read:   domain.AnyRole,
			Create: domain.AnyRole,
			Update: domain.AdminOrManager,
			Delete: domain.AdminOnly,
		},
		SingleDefault: true,
	}, suite.repo, nil)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.RequireAnyUser(suite.tokenSvc))
	handlers.RegisterRefDataRoutes[*domain.Bank, dto.BankRequest](
		v1, "banks", bankService, "banks", "accountNumber")
}

func (suite *BankHandlerTestSuite) token(role domain.Role, companyID string) string {
	signed, _, err := suite.tokenSvc.IssueAccessToken(context.Background(), domain.AuthUser{
		UserID:    "user-" + string(role),
		CompanyID: companyID,
		RoleID:    role,
	}, "")
	suite.Require().NoError(err)
	return signed
}

func (suite *BankHandlerTestSuite) do(method, target, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BankHandlerTestSuite) seedBank(companyID, accountNumber string, isDefault bool) {
	b := &domain.Bank{CompanyID: companyID, AccountNumber: accountNumber, BankName: "Seeded", IsDefault: isDefault}
	b.CreatedAt = time.Now()
	b.CreatedBy = "seeder"
	suite.repo.records[suite.repo.compositeKey(companyID, accountNumber)] = b
}

func (suite *BankHandlerTestSuite) TestListRequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/banks", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *BankHandlerTestSuite) TestCreateThenList() {
	token := suite.token(domain.RoleStaff, "company-1")

	w := suite.do(http.MethodPost, "/api/v1/banks", token, dto.BankRequest{
		AccountNumber: "1234567", BankName: "Mizuho", BranchName: "Shibuya",
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/banks", token, nil)
	suite.Equal(http.StatusOK, w.Code)

	var body map[string][]dto.BankRequest
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body["banks"], 1)
	suite.Equal("1234567", body["banks"][0].AccountNumber)
}

func (suite *BankHandlerTestSuite) TestCreateDuplicateConflict() {
	suite.seedBank("company-1", "1234567", false)
	token := suite.token(domain.RoleStaff, "company-1")

	w := suite.do(http.MethodPost, "/api/v1/banks", token, dto.BankRequest{
		AccountNumber: "1234567", BankName: "Mizuho",
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *BankHandlerTestSuite) TestCreateValidationFailure() {
	token := suite.token(domain.RoleStaff, "company-1")

	w := suite.do(http.MethodPost, "/api/v1/banks", token, map[string]string{"bankName": "No Account"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BankHandlerTestSuite) TestNewDefaultDisplacesOld() {
	suite.seedBank("company-1", "1111111", true)
	token := suite.token(domain.RoleManager, "company-1")

	w := suite.do(http.MethodPost, "/api/v1/banks", token, dto.BankRequest{
		AccountNumber: "2222222", BankName: "SMBC", IsDefault: true,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	defaults := 0
	for _, b := range suite.repo.records {
		if b.IsDefault {
			defaults++
			suite.Equal("2222222", b.AccountNumber)
		}
	}
	suite.Equal(1, defaults)
}

func (suite *BankHandlerTestSuite) TestStaffCannotDelete() {
	suite.seedBank("company-1", "1234567", false)

	w := suite.do(http.MethodDelete, "/api/v1/banks?accountNumber=1234567", suite.token(domain.RoleStaff, "company-1"), nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Len(suite.repo.records, 1)
}

func (suite *BankHandlerTestSuite) TestAdminDelete() {
	suite.seedBank("company-1", "1234567", false)

	w := suite.do(http.MethodDelete, "/api/v1/banks?accountNumber=1234567", suite.token(domain.RoleAdmin, "company-1"), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.repo.records)
}

func (suite *BankHandlerTestSuite) TestDeleteMissingParam() {
	w := suite.do(http.MethodDelete, "/api/v1/banks", suite.token(domain.RoleAdmin, "company-1"), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BankHandlerTestSuite) TestDeleteUnknownKey() {
	w := suite.do(http.MethodDelete, "/api/v1/banks?accountNumber=0000000", suite.token(domain.RoleAdmin, "company-1"), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BankHandlerTestSuite) TestDeleteInUseConflict() {
	suite.seedBank("company-1", "1234567", false)
	suite.repo.refs["company-1/1234567"] = 1

	w := suite.do(http.MethodDelete, "/api/v1/banks?accountNumber=1234567", suite.token(domain.RoleAdmin, "company-1"), nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Len(suite.repo.records, 1)
}

func (suite *BankHandlerTestSuite) TestRenamePreservesCreationAudit() {
	suite.seedBank("company-1", "1111111", false)
	token := suite.token(domain.RoleAdmin, "company-1")

	w := suite.do(http.MethodPut, "/api/v1/banks/1111111", token, dto.BankRequest{
		AccountNumber: "9999999", BankName: "Renamed",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	_, oldExists := suite.repo.records["company-1/1111111"]
	suite.False(oldExists)
	renamed, newExists := suite.repo.records["company-1/9999999"]
	suite.Require().True(newExists)
	suite.Equal("seeder", renamed.CreatedBy)
	suite.Equal("user-AD", renamed.UpdatedBy)
}

func (suite *BankHandlerTestSuite) TestRenameConflictLeavesBothUntouched() {
	suite.seedBank("company-1", "1111111", false)
	suite.seedBank("company-1", "2222222", false)
	token := suite.token(domain.RoleAdmin, "company-1")

	w := suite.do(http.MethodPut, "/api/v1/banks/1111111", token, dto.BankRequest{
		AccountNumber: "2222222", BankName: "Collision",
	})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Len(suite.repo.records, 2)
}

func (suite *BankHandlerTestSuite) TestTenantIsolation() {
	suite.seedBank("company-1", "1234567", false)

	// The other tenant sees an empty list and cannot address the record.
	w := suite.do(http.MethodGet, "/api/v1/banks", suite.token(domain.RoleAdmin, "company-2"), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var body map[string][]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body["banks"])

	w = suite.do(http.MethodDelete, "/api/v1/banks?accountNumber=1234567", suite.token(domain.RoleAdmin, "company-2"), nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Len(suite.repo.records, 1)
}

func (suite *BankHandlerTestSuite) TestUpdateUnknownKeyNotFound() {
	token := suite.token(domain.RoleAdmin, "company-1")
	w := suite.do(http.MethodPut, "/api/v1/banks/0000000", token, dto.BankRequest{
		AccountNumber: "0000000", BankName: "Ghost",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestBankHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BankHandlerTestSuite))
}
