package services

import (
	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services/dto"
	"creatorcrewz/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// CreateReview lets a participant of a completed project rate the other participant once.
	CreateReview(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error)
	GetUserRating(db *gorm.DB, userID string) (float64, int64, error)
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	projectRepo repositories.ProjectRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, projectRepo repositories.ProjectRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, projectRepo: projectRepo}
}

func (s *reviewService) CreateReview(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	project, err := s.projectRepo.FindByID(db, req.ProjectID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	reviewedID, ok := project.Counterparty(reviewerID)
	if !ok {
		return nil, apperrors.ErrNotProjectParticipant
	}
	if project.Status != models.ProjectStatusCompleted {
		return nil, apperrors.ErrProjectNotCompleted
	}

	review := &models.Review{
		ProjectID:  project.ID,
		ReviewerID: reviewerID,
		ReviewedID: reviewedID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, handleRepoError(err)
	}

	logger.Info("Review created", "review_id", review.ID, "project_id", project.ID, "rating", review.Rating)
	return review, nil
}

func (s *reviewService) GetUserRating(db *gorm.DB, userID string) (float64, int64, error) {
	avg, total, err := s.reviewRepo.AverageRating(db, userID)
	if err != nil {
		return 0, 0, apperrors.InternalError(err)
	}
	return avg, total, nil
}
