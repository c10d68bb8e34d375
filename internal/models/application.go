package models

// Application links a talent to a job posting; one per (job, talent).
type Application struct {
	BaseModel
	JobID        string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_talent" json:"job_id"`
	TalentID     string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_talent;index" json:"talent_id"`
	CoverLetter  string            `json:"cover_letter"`
	ProposedRate *float64          `json:"proposed_rate,omitempty"`
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Job *JobPosting `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
