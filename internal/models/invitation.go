package models

import "time"

// Invitation grants one talent registration for an email address.
// Only the SHA-256 of the code is stored.
type Invitation struct {
	BaseModel
	Email      string     `gorm:"size:255;not null;index" json:"email"`
	CodeHash   string     `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	AcceptedBy *string    `gorm:"type:varchar(36)" json:"accepted_by,omitempty"`
}

// IsUsable reports whether the invitation can still be redeemed at now.
func (i *Invitation) IsUsable(now time.Time) bool {
	return i.AcceptedAt == nil && now.Before(i.ExpiresAt)
}
