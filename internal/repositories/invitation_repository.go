package repositories

import (
	"errors"
	"time"

	"creatorcrewz/internal/models"

	"gorm.io/gorm"
)

var ErrInvitationNotFound = errors.New("invitation not found or already used")

type InvitationRepository interface {
	Create(db *gorm.DB, invitation *models.Invitation) error
	FindUsable(db *gorm.DB, email, codeHash string, now time.Time) (*models.Invitation, error)
	MarkAccepted(db *gorm.DB, id, userID string, at time.Time) error
	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
}

type invitationRepository struct{}

func NewInvitationRepository() InvitationRepository {
	return &invitationRepository{}
}

func (r *invitationRepository) Create(db *gorm.DB, invitation *models.Invitation) error {
	return db.Create(invitation).Error
}

func (r *invitationRepository) FindUsable(db *gorm.DB, email, codeHash string, now time.Time) (*models.Invitation, error) {
	var inv models.Invitation
	err := db.Where("email = ? AND code_hash = ? AND accepted_at IS NULL AND expires_at > ?", email, codeHash, now).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// MarkAccepted is conditional on the invitation still being open, so one code registers one account.
func (r *invitationRepository) MarkAccepted(db *gorm.DB, id, userID string, at time.Time) error {
	result := db.Model(&models.Invitation{}).
		Where("id = ? AND accepted_at IS NULL", id).
		Updates(map[string]interface{}{
			"accepted_at": at,
			"accepted_by": userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

func (r *invitationRepository) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("accepted_at IS NULL AND expires_at <= ?", now).Delete(&models.Invitation{})
	return result.RowsAffected, result.Error
}
