package dto

import (
	"time"

	"creatorcrewz/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`

	// Required for talent.
	InviteCode string `json:"invite_code,omitempty"`

	CompanyName  string              `json:"company_name,omitempty"`
	TalentStatus models.TalentStatus `json:"talent_status,omitempty" validate:"omitempty,is-talent-status"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserDTO   `json:"user"`
}

type UserDTO struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// IssueInvitationRequest carries the invitee address through the validator.
type IssueInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InvitationResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
