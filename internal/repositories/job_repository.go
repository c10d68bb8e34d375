package repositories

import (
	"errors"

	"creatorcrewz/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrJobNotFound     = errors.New("job posting not found")
	ErrStatusConflict  = errors.New("status changed concurrently")
	ErrSavedJobMissing = errors.New("saved job not found")
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.JobPosting) error
	FindByID(db *gorm.DB, id string) (*models.JobPosting, error)
	FindOpen(db *gorm.DB, limit, offset int) ([]models.JobPosting, int64, error)
	FindByCreator(db *gorm.DB, creatorID string) ([]models.JobPosting, error)
	// UpdateStatus moves a job from one status to another; ErrStatusConflict when it is no longer in from.
	UpdateStatus(db *gorm.DB, id string, from, to models.JobStatus) error

	SaveJob(db *gorm.DB, userID, jobID string) error
	UnsaveJob(db *gorm.DB, userID, jobID string) error
	FindSavedByUser(db *gorm.DB, userID string) ([]models.JobPosting, error)
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.JobPosting) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindOpen(db *gorm.DB, limit, offset int) ([]models.JobPosting, int64, error) {
	var (
		jobs  []models.JobPosting
		total int64
	)

	query := db.Model(&models.JobPosting{}).Where("status = ?", models.JobStatusOpen)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) FindByCreator(db *gorm.DB, creatorID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) UpdateStatus(db *gorm.DB, id string, from, to models.JobStatus) error {
	result := db.Model(&models.JobPosting{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// SaveJob is idempotent: saving twice keeps one bookmark.
func (r *jobRepository) SaveJob(db *gorm.DB, userID, jobID string) error {
	saved := &models.SavedJob{UserID: userID, JobID: jobID}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(saved).Error
}

func (r *jobRepository) UnsaveJob(db *gorm.DB, userID, jobID string) error {
	result := db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobMissing
	}
	return nil
}

func (r *jobRepository) FindSavedByUser(db *gorm.DB, userID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := db.Joins("JOIN saved_jobs ON saved_jobs.job_id = job_postings.id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.created_at DESC").
		Find(&jobs).Error
	return jobs, err
}
