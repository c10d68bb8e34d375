package services

import (
	"errors"
	"strings"

	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services/dto"
	"creatorcrewz/pkg/apperrors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type JobService interface {
	PostJob(db *gorm.DB, creatorID string, req *dto.CreateJobRequest) (*models.JobPosting, error)
	GetJob(db *gorm.DB, jobID string) (*models.JobPosting, error)
	UpdateJobStatus(db *gorm.DB, creatorID, jobID string, status models.JobStatus) error
	ListOpenJobs(db *gorm.DB, page, pageSize int) (*dto.JobListResponse, error)
	SaveJob(db *gorm.DB, userID, jobID string) error
	UnsaveJob(db *gorm.DB, userID, jobID string) error
	ListSavedJobs(db *gorm.DB, userID string) ([]models.JobPosting, error)
}

type jobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &jobService{jobRepo: jobRepo, userRepo: userRepo}
}

func (s *jobService) PostJob(db *gorm.DB, creatorID string, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	user, err := s.userRepo.FindByID(db, creatorID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !user.IsCreator() {
		return nil, apperrors.ErrInvalidUserRole
	}

	job := &models.JobPosting{
		CreatorID:      creatorID,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		JobType:        req.JobType,
		Budget:         req.Budget,
		SkillsRequired: pq.StringArray(req.SkillsRequired),
		Location:       req.Location,
		IsRemote:       req.IsRemote,
		Status:         models.JobStatusOpen,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, handleRepoError(err)
	}

	logger.Info("Job posted", "job_id", job.ID, "creator_id", creatorID, "job_type", job.JobType)
	return job, nil
}

func (s *jobService) GetJob(db *gorm.DB, jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return job, nil
}

// UpdateJobStatus lets the owning creator move a job along open → in_progress → completed, or cancel it.
func (s *jobService) UpdateJobStatus(db *gorm.DB, creatorID, jobID string, status models.JobStatus) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return handleRepoError(err)
	}
	if job.CreatorID != creatorID {
		return apperrors.ErrInsufficientPermissions
	}
	if !status.IsValid() || !job.Status.CanTransitionTo(status) {
		return apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"from": string(job.Status),
			"to":   string(status),
		})
	}

	return handleRepoError(s.jobRepo.UpdateStatus(db, jobID, job.Status, status))
}

func (s *jobService) ListOpenJobs(db *gorm.DB, page, pageSize int) (*dto.JobListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	jobs, total, err := s.jobRepo.FindOpen(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.JobListResponse{Jobs: jobs, Total: total, Page: page, PageSize: pageSize}, nil
}

// SaveJob bookmarks a job; saving it again is a no-op.
func (s *jobService) SaveJob(db *gorm.DB, userID, jobID string) error {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		return handleRepoError(err)
	}
	return handleRepoError(s.jobRepo.SaveJob(db, userID, jobID))
}

// UnsaveJob removes a bookmark; removing a missing one is a no-op.
func (s *jobService) UnsaveJob(db *gorm.DB, userID, jobID string) error {
	err := s.jobRepo.UnsaveJob(db, userID, jobID)
	if errors.Is(err, repositories.ErrSavedJobMissing) {
		return nil
	}
	return handleRepoError(err)
}

func (s *jobService) ListSavedJobs(db *gorm.DB, userID string) ([]models.JobPosting, error) {
	jobs, err := s.jobRepo.FindSavedByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}
