package dto

import "creatorcrewz/internal/models"

type CreateJobRequest struct {
	Title          string         `json:"title" validate:"required,max=200"`
	Description    string         `json:"description"`
	JobType        models.JobType `json:"job_type" validate:"required,is-job-type"`
	Budget         *float64       `json:"budget,omitempty" validate:"omitempty,min=0"`
	SkillsRequired []string       `json:"skills_required"`
	Location       *string        `json:"location,omitempty"`
	IsRemote       bool           `json:"is_remote"`
}

type JobListResponse struct {
	Jobs     []models.JobPosting `json:"jobs"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

type ApplyRequest struct {
	JobID        string   `json:"job_id" validate:"required"`
	CoverLetter  string   `json:"cover_letter"`
	ProposedRate *float64 `json:"proposed_rate,omitempty" validate:"omitempty,min=0"`
}

type CreateReviewRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type PostMessageRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Content   string `json:"content" validate:"required,max=5000"`
}
