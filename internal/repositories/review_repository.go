package repositories

import (
	"errors"

	"creatorcrewz/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this project")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByProjectAndReviewer(db *gorm.DB, projectID, reviewerID string) (*models.Review, error)
	FindByReviewed(db *gorm.DB, userID string) ([]models.Review, error)
	AverageRating(db *gorm.DB, userID string) (float64, int64, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	if _, err := r.FindByProjectAndReviewer(db, review.ProjectID, review.ReviewerID); err == nil {
		return ErrReviewAlreadyExists
	} else if !errors.Is(err, ErrReviewNotFound) {
		return err
	}

	return translateCreate(db.Create(review).Error, ErrReviewAlreadyExists)
}

func (r *reviewRepository) FindByProjectAndReviewer(db *gorm.DB, projectID, reviewerID string) (*models.Review, error) {
	var review models.Review
	err := db.Where("project_id = ? AND reviewer_id = ?", projectID, reviewerID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByReviewed(db *gorm.DB, userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("reviewed_id = ?", userID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AverageRating(db *gorm.DB, userID string) (float64, int64, error) {
	var stats struct {
		Average float64
		Total   int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("reviewed_id = ?", userID).
		Scan(&stats).Error
	return stats.Average, stats.Total, err
}
