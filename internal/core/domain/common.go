package domain

import "time"

// AuditFields holds standard audit information for all persisted entities.
// The fields are always server-set; clients never supply them.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID reference
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"` // UserID reference
}

// Stamp sets all audit fields for a freshly created record.
func (a *AuditFields) Stamp(userID string, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = userID
	a.UpdatedAt = now
	a.UpdatedBy = userID
}

// Touch updates the modification audit fields, preserving creation info.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = userID
}
