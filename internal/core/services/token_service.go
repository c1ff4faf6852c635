package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
	"github.com/kurumaops/dealer_mgmt_app/pkg/config"
)

// Fallback identity fields used only when the canonical user lookup is
// unavailable during a refresh.
const (
	fallbackRoleID      = "CU"
	fallbackRoleName    = "Company User"
	fallbackCompanyName = "Company"
)

// ttlPattern matches duration strings like "7d", "12h", "30m", "45s".
var ttlPattern = regexp.MustCompile(`^(\d+)([dhms])$`)

// tokenService implements TokenSvcFacade over HMAC-signed JWTs. The service is
// stateless: expiry is the only invalidation mechanism.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a token service. userService is used to re-fetch the
// canonical identity when refreshing an access token; it may be nil in tests,
// in which case refresh falls back to placeholder identity fields.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	if cfg.JWTSecret == "" {
		// Startup configuration error: the service must refuse to run
		// unauthenticated.
		panic("token service: signing secret is not configured")
	}
	return &tokenService{cfg: cfg, userService: userService}
}

// ParseExpiry converts a ttl spec into a duration. It accepts either a string
// matching ^\d+[dhms]$ or a raw second count; anything else fails with
// apperrors.ErrValidation.
func ParseExpiry(ttl string) (time.Duration, error) {
	if m := ttlPattern.FindStringSubmatch(ttl); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: invalid expiry %q", apperrors.ErrValidation, ttl)
		}
		switch m[2] {
		case "d":
			return time.Duration(n) * 24 * time.Hour, nil
		case "h":
			return time.Duration(n) * time.Hour, nil
		case "m":
			return time.Duration(n) * time.Minute, nil
		default:
			return time.Duration(n) * time.Second, nil
		}
	}
	if seconds, err := strconv.Atoi(ttl); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second, nil
	}
	return 0, fmt.Errorf("%w: invalid expiry %q", apperrors.ErrValidation, ttl)
}

func (s *tokenService) IssueAccessToken(ctx context.Context, identity domain.AuthUser, ttl string) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ttl == "" {
		ttl = s.cfg.AccessTokenExpiry
	}
	expiry, err := ParseExpiry(ttl)
	if err != nil {
		logger.Warn("Rejected access token request with invalid ttl", slog.String("ttl", ttl))
		return "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(expiry)
	claims := portssvc.TokenClaims{
		UserName:    identity.UserName,
		Email:       identity.Email,
		CompanyID:   identity.CompanyID,
		CompanyName: identity.CompanyName,
		RoleID:      string(identity.RoleID),
		RoleName:    identity.RoleName,
		TokenType:   portssvc.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWTIssuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	logger.Info("Issued access token", slog.String("user_id", identity.UserID), slog.Time("expires_at", expiresAt))
	return signed, expiresAt, nil
}

// IssueRefreshToken signs a refresh token whose payload is a strict subset of
// the access-token payload: subject, company and token type only. It must
// never be usable for role-based authorization.
func (s *tokenService) IssueRefreshToken(ctx context.Context, userID, companyID string) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	expiresAt := now.Add(s.cfg.RefreshTokenExpiry)
	claims := portssvc.TokenClaims{
		CompanyID: companyID,
		TokenType: portssvc.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWTIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign refresh token", slog.String("error", err.Error()))
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	logger.Info("Issued refresh token", slog.String("user_id", userID), slog.Time("expires_at", expiresAt))
	return signed, expiresAt, nil
}

// Verify parses and validates a token. Expired and tampered tokens log their
// distinct causes but share a single apperrors.ErrUnauthorized contract; no
// distinction surfaces past this layer.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (*portssvc.TokenClaims, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claims := &portssvc.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Info("Token expired", slog.String("user_id", claims.Subject))
		} else {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
		}
		return nil, apperrors.ErrUnauthorized
	}
	if !token.Valid {
		logger.Warn("Token invalid after parse")
		return nil, apperrors.ErrUnauthorized
	}

	logger.Debug("Token verified", slog.String("user_id", claims.Subject), slog.String("token_type", claims.TokenType))
	return claims, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token. The
// canonical identity is re-fetched through the user service so a refreshed
// token never carries stale role or company data; placeholder fields are used
// only when the lookup is unavailable, and that path is logged.
func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claims, err := s.Verify(ctx, refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}
	if claims.TokenType != portssvc.TokenTypeRefresh {
		logger.Warn("Refresh attempted with non-refresh token", slog.String("token_type", claims.TokenType))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	identity := domain.AuthUser{
		UserID:      claims.Subject,
		CompanyID:   claims.CompanyID,
		RoleID:      domain.Role(fallbackRoleID),
		RoleName:    fallbackRoleName,
		CompanyName: fallbackCompanyName,
	}

	if s.userService != nil {
		user, err := s.userService.GetUserByID(ctx, claims.Subject)
		switch {
		case err == nil:
			identity = domain.AuthUser{
				UserID:      user.UserID,
				UserName:    user.Name,
				Email:       user.Email,
				CompanyID:   user.CompanyID,
				CompanyName: user.CompanyName,
				RoleID:      user.Role,
				RoleName:    user.Role.DisplayName(),
			}
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Refresh for unknown user rejected", slog.String("user_id", claims.Subject))
			return "", time.Time{}, apperrors.ErrUnauthorized
		default:
			logger.Error("Canonical identity lookup failed on refresh; issuing token with placeholder identity",
				slog.String("user_id", claims.Subject), slog.String("error", err.Error()))
		}
	} else {
		logger.Warn("No user service configured; issuing refreshed token with placeholder identity",
			slog.String("user_id", claims.Subject))
	}

	return s.IssueAccessToken(ctx, identity, "")
}
