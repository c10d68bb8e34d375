package repositories

import (
	"errors"

	"creatorcrewz/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists for this job")
)

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByParticipant(db *gorm.DB, userID string) ([]models.Project, error)
	UpdateStatus(db *gorm.DB, id string, from, to models.ProjectStatus) error
	UpdatePaymentStatus(db *gorm.DB, id string, from, to models.PaymentStatus) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	if project.PaymentStatus == "" {
		project.PaymentStatus = models.PaymentStatusPending
	}
	return translateCreate(db.Create(project).Error, ErrProjectAlreadyExists)
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByParticipant(db *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("creator_id = ? OR talent_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) UpdateStatus(db *gorm.DB, id string, from, to models.ProjectStatus) error {
	result := db.Model(&models.Project{}).
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

// UpdatePaymentStatus compares against from so a released payment is never overwritten.
func (r *projectRepository) UpdatePaymentStatus(db *gorm.DB, id string, from, to models.PaymentStatus) error {
	result := db.Model(&models.Project{}).
		Where("id = ? AND payment_status = ?", id, from).
		Update("payment_status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}
