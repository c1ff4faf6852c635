package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kurumaops/dealer_mgmt_app/internal/core/domain"
	portssvc "github.com/kurumaops/dealer_mgmt_app/internal/core/ports/services"
	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
	"github.com/kurumaops/dealer_mgmt_app/internal/middleware"
	"github.com/kurumaops/dealer_mgmt_app/internal/utils"
	"github.com/kurumaops/dealer_mgmt_app/pkg/config"
)

// AuthHandler handles login, token refresh and logout. Access tokens travel in
// the response body; refresh tokens only ever travel in an HTTP-only cookie
// (or, for cookie-less clients, the refresh request body).
type AuthHandler struct {
	tokenService  portssvc.TokenSvcFacade
	userService   portssvc.UserSvcFacade
	googleService portssvc.GoogleOAuthSvcFacade
	cfg           *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		tokenService:  services.Token,
		userService:   services.User,
		googleService: services.GoogleOAuth,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.POST("/google/exchange-code", middleware.RateLimit(ipLimiter), h.GoogleExchangeCode)
	}
}

// Login godoc
// @Summary Staff login
// @Description Authenticates a staff account and returns an access token; the refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Same response for unknown account and wrong password.
		logger.Warn("Login failed: account lookup", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed: password mismatch", slog.String("user_id", user.UserID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.issueSession(c, user)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Mints a new access token from the refresh cookie or request body.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest false "Refresh token for cookie-less clients"
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, err := c.Cookie(h.cfg.RefreshCookieName)
	if err != nil || refreshToken == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	accessToken, expiresAt, err := h.tokenService.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		logger.Warn("Refresh rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken, ExpiresAt: expiresAt})
}

// Logout godoc
// @Summary Logout
// @Description Clears the refresh cookie. Access tokens are stateless and simply age out.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshCookieName, "", -1, h.cfg.RefreshCookiePath, "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GoogleExchangeCode godoc
// @Summary Google sign-in
// @Description Exchanges a Google OAuth authorization code and maps the verified email to an existing staff account.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/google/exchange-code [post]
func (h *AuthHandler) GoogleExchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	oauthToken, err := h.googleService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Warn("Google token response missing id_token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	payload, err := h.googleService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		logger.Warn("Google id_token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); !verified || email == "" {
		logger.Warn("Google identity has no verified email")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	// Accounts are provisioned by an admin beforehand; an unknown email is a
	// rejected sign-in, never an implicit registration.
	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Warn("Google sign-in for unprovisioned email", slog.String("email", email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No account for this Google identity"})
		return
	}

	h.issueSession(c, user)
}

// issueSession mints the access/refresh pair for an authenticated user and
// writes the refresh cookie scoped to the auth endpoints.
func (h *AuthHandler) issueSession(c *gin.Context, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity := domain.AuthUser{
		UserID:      user.UserID,
		UserName:    user.Name,
		Email:       user.Email,
		CompanyID:   user.CompanyID,
		CompanyName: user.CompanyName,
		RoleID:      user.Role,
		RoleName:    user.Role.DisplayName(),
	}

	accessToken, expiresAt, err := h.tokenService.IssueAccessToken(c.Request.Context(), identity, "")
	if err != nil {
		logger.Error("Failed to issue access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.IssueRefreshToken(c.Request.Context(), user.UserID, user.CompanyID)
	if err != nil {
		logger.Error("Failed to issue refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	maxAge := int(time.Until(refreshExpiry).Seconds())
	c.SetCookie(h.cfg.RefreshCookieName, refreshToken, maxAge, h.cfg.RefreshCookiePath, "", h.cfg.IsProduction, true)

	logger.Info("Session issued", slog.String("user_id", user.UserID), slog.String("company_id", user.CompanyID))
	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: accessToken, ExpiresAt: expiresAt})
}
