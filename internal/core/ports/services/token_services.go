package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
)

// Token type markers carried in the tokenType claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the JWT payload for both access and refresh tokens. A refresh
// token carries only Subject (user id), CompanyID and TokenType; it must never
// be accepted for authorization decisions that require a role.
type TokenClaims struct {
	UserName    string `json:"userName,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyID   string `json:"companyID"`
	CompanyName string `json:"companyName,omitempty"`
	RoleID      string `json:"roleID,omitempty"`
	RoleName    string `json:"roleName,omitempty"`
	TokenType   string `json:"tokenType"`
	jwt.RegisteredClaims
}

// AuthUser converts verified access-token claims into the request identity.
func (c *TokenClaims) AuthUser() domain.AuthUser {
	return domain.AuthUser{
		UserID:      c.Subject,
		UserName:    c.UserName,
		Email:       c.Email,
		CompanyID:   c.CompanyID,
		CompanyName: c.CompanyName,
		RoleID:      domain.Role(c.RoleID),
		RoleName:    c.RoleName,
	}
}

// TokenSvcFacade issues, verifies and refreshes the signed session tokens used
// by the login flow and the auth middleware.
type TokenSvcFacade interface {
	// IssueAccessToken signs an access token for the identity. ttl accepts a
	// duration string matching ^\d+[dhms]$ or a raw second count; an empty ttl
	// uses the configured default. Any other format fails with
	// apperrors.ErrValidation.
	IssueAccessToken(ctx context.Context, identity domain.AuthUser, ttl string) (string, time.Time, error)
	// IssueRefreshToken signs a refresh token with a fixed configured expiry
	// and a minimal payload.
	IssueRefreshToken(ctx context.Context, userID, companyID string) (string, time.Time, error)
	// Verify checks signature and expiry. Tampered and expired tokens are
	// reported identically as apperrors.ErrUnauthorized; the two causes are
	// only distinguished in logs.
	Verify(ctx context.Context, tokenString string) (*TokenClaims, error)
	// RefreshAccessToken mints a new access token from a valid refresh token,
	// re-fetching the canonical identity for the token's subject.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, time.Time, error)
}
