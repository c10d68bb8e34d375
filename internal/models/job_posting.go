package models

import (
	"strings"

	"github.com/lib/pq"
)

type JobPosting struct {
	BaseModel
	CreatorID      string         `gorm:"type:varchar(36);not null;index" json:"creator_id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	JobType        JobType        `gorm:"type:varchar(20);not null" json:"job_type"`
	Budget         *float64       `json:"budget,omitempty"` // one-off jobs only
	SkillsRequired pq.StringArray `gorm:"type:text[]" json:"skills_required"`
	Location       *string        `json:"location,omitempty"`
	IsRemote       bool           `gorm:"default:false" json:"is_remote"`
	Status         JobStatus      `gorm:"type:varchar(20);default:'open';index" json:"status"`
}

func (j *JobPosting) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return ErrMissingTitle
	}
	if !j.JobType.IsValid() {
		return ErrInvalidJobType
	}
	if j.Budget != nil {
		if j.JobType != JobTypeOneOff {
			return ErrBudgetNotApplicable
		}
		if *j.Budget < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

// OneOffBudget returns the budget when the job is one-off and has one.
func (j *JobPosting) OneOffBudget() (float64, bool) {
	if j.Budget == nil || j.JobType != JobTypeOneOff {
		return 0, false
	}
	return *j.Budget, true
}

func (j *JobPosting) IsOpen() bool { return j.Status == JobStatusOpen }
