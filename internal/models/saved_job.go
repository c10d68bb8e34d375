package models

// SavedJob is a bookmark; one per (user, job).
type SavedJob struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_job_user_job" json:"user_id"`
	JobID  string `gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_job_user_job" json:"job_id"`
}
