package repositories

import (
	"errors"

	"creatorcrewz/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type ProfileRepository interface {
	CreateCreatorProfile(db *gorm.DB, profile *models.CreatorProfile) error
	CreateTalentProfile(db *gorm.DB, profile *models.TalentProfile) error
	FindCreatorProfileByUserID(db *gorm.DB, userID string) (*models.CreatorProfile, error)
	FindTalentProfileByUserID(db *gorm.DB, userID string) (*models.TalentProfile, error)
	UpdateTalentProfile(db *gorm.DB, profile *models.TalentProfile) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) CreateCreatorProfile(db *gorm.DB, profile *models.CreatorProfile) error {
	return translateCreate(db.Create(profile).Error, ErrProfileAlreadyExists)
}

func (r *profileRepository) CreateTalentProfile(db *gorm.DB, profile *models.TalentProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return translateCreate(db.Create(profile).Error, ErrProfileAlreadyExists)
}

func (r *profileRepository) FindCreatorProfileByUserID(db *gorm.DB, userID string) (*models.CreatorProfile, error) {
	var profile models.CreatorProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindTalentProfileByUserID(db *gorm.DB, userID string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateTalentProfile saves profile fields. A rate left on a long-term-only profile is rejected.
func (r *profileRepository) UpdateTalentProfile(db *gorm.DB, profile *models.TalentProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	result := db.Model(&models.TalentProfile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"title":           profile.Title,
		"status":          profile.Status,
		"bio":             profile.Bio,
		"rate":            profile.Rate,
		"skills":          profile.Skills,
		"location":        profile.Location,
		"portfolio_links": profile.PortfolioLinks,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// translateCreate maps a unique violation to dup.
func translateCreate(err, dup error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dup
	}
	return err
}
