package repositories

import (
	"creatorcrewz/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, msg *models.Message) error
	FindByProject(db *gorm.DB, projectID string, limit int) ([]models.Message, error)
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, msg *models.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	return db.Create(msg).Error
}

func (r *messageRepository) FindByProject(db *gorm.DB, projectID string, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := db.Where("project_id = ?", projectID).
		Order("created_at ASC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
