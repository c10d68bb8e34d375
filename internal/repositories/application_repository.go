package repositories

import (
	"errors"

	"creatorcrewz/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("talent already applied to this job")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJobAndTalent(db *gorm.DB, jobID, talentID string) (*models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	FindByTalent(db *gorm.DB, talentID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, from, to models.ApplicationStatus) error
	// RejectOthers rejects every other pending application for the job.
	RejectOthers(db *gorm.DB, jobID, acceptedID string) (int64, error)
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *models.Application) error {
	if _, err := r.FindByJobAndTalent(db, app.JobID, app.TalentID); err == nil {
		return ErrApplicationAlreadyExists
	} else if !errors.Is(err, ErrApplicationNotFound) {
		return err
	}

	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	return translateCreate(db.Create(app).Error, ErrApplicationAlreadyExists)
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Job").First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJobAndTalent(db *gorm.DB, jobID, talentID string) (*models.Application, error) {
	var app models.Application
	err := db.Where("job_id = ? AND talent_id = ?", jobID, talentID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByTalent(db *gorm.DB, talentID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Where("talent_id = ?", talentID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, id string, from, to models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).
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

func (r *applicationRepository) RejectOthers(db *gorm.DB, jobID, acceptedID string) (int64, error) {
	result := db.Model(&models.Application{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, acceptedID, models.ApplicationStatusPending).
		Update("status", models.ApplicationStatusRejected)
	return result.RowsAffected, result.Error
}
