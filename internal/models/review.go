package models

type Review struct {
	BaseModel
	ProjectID  string `gorm:"type:varchar(36);not null;uniqueIndex:idx_review_project_reviewer" json:"project_id"`
	ReviewerID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_review_project_reviewer" json:"reviewer_id"`
	ReviewedID string `gorm:"type:varchar(36);not null;index" json:"reviewed_id"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string `json:"comment"`
}

const (
	MinRating = 1
	MaxRating = 5
)

func (r *Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrRatingOutOfRange
	}
	if r.ReviewerID == r.ReviewedID {
		return ErrSelfReview
	}
	return nil
}
