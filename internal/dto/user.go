package dto

import "github.com/kurumaops/dealer_mgmt_app/internal/core/domain"

// MeResponse describes the authenticated identity for GET /users/me.
type MeResponse struct {
	UserID      string `json:"userID"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	CompanyID   string `json:"companyID"`
	CompanyName string `json:"companyName"`
	RoleID      string `json:"roleID"`
	RoleName    string `json:"roleName"`
}

// ToMeResponse converts the context identity into the response shape.
func ToMeResponse(u domain.AuthUser) MeResponse {
	return MeResponse{
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		CompanyID:   u.CompanyID,
		CompanyName: u.CompanyName,
		RoleID:      string(u.RoleID),
		RoleName:    u.RoleName,
	}
}
