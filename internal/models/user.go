package models

import "time"

// User is an account. Role is fixed at creation and never updated.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relations
	CreatorProfile *CreatorProfile `gorm:"foreignKey:UserID" json:"creator_profile,omitempty"`
	TalentProfile  *TalentProfile  `gorm:"foreignKey:UserID" json:"talent_profile,omitempty"`
}

func (u *User) IsCreator() bool { return u.Role == UserRoleCreator }

func (u *User) IsTalent() bool { return u.Role == UserRoleTalent }
