package models

// Project is formed from an accepted application.
type Project struct {
	BaseModel
	JobID                 string        `gorm:"type:varchar(36);not null;uniqueIndex" json:"job_id"`
	CreatorID             string        `gorm:"type:varchar(36);not null;index" json:"creator_id"`
	TalentID              string        `gorm:"type:varchar(36);not null;index" json:"talent_id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	Budget                float64       `json:"budget"`
	Status                ProjectStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	PaymentStatus         PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	StripePaymentIntentID *string       `json:"stripe_payment_intent_id,omitempty"`
}

func (p *Project) IsParticipant(userID string) bool {
	return userID != "" && (userID == p.CreatorID || userID == p.TalentID)
}

// Counterparty returns the other participant.
func (p *Project) Counterparty(userID string) (string, bool) {
	switch userID {
	case p.CreatorID:
		return p.TalentID, true
	case p.TalentID:
		return p.CreatorID, true
	default:
		return "", false
	}
}
