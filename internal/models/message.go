package models

import "strings"

type Message struct {
	BaseModel
	SenderID   string  `gorm:"type:varchar(36);not null;index" json:"sender_id"`
	ReceiverID string  `gorm:"type:varchar(36);not null;index" json:"receiver_id"`
	ProjectID  *string `gorm:"type:varchar(36);index" json:"project_id,omitempty"`
	Content    string  `gorm:"not null" json:"content"`
	IsRead     bool    `gorm:"default:false" json:"is_read"`
}

func (m *Message) Validate() error {
	if m.SenderID == m.ReceiverID {
		return ErrSelfMessage
	}
	if strings.TrimSpace(m.Content) == "" {
		return ErrEmptyMessage
	}
	return nil
}
