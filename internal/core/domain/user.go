package domain

import "time"

// Company represents one tenant. All reference and transactional data is
// partitioned by CompanyID.
type Company struct {
	CompanyID string `json:"companyID"` // Primary Key (UUID)
	Name      string `json:"name"`
	AuditFields
}

// User represents a dealer staff account belonging to exactly one company.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	CompanyID    string `json:"companyID"`
	CompanyName  string `json:"companyName"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"roleID"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// AuthUser is the authenticated identity resolved from an access token and
// attached to the request context by the auth middleware.
type AuthUser struct {
	UserID      string `json:"userID"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	CompanyID   string `json:"companyID"`
	CompanyName string `json:"companyName"`
	RoleID      Role   `json:"roleID"`
	RoleName    string `json:"roleName"`
}
