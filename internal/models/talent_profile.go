package models

import (
	"github.com/lib/pq"
)

type TalentProfile struct {
	BaseModel
	UserID         string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	Title          string         `json:"title"`
	Status         TalentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Bio            *string        `json:"bio,omitempty"`
	Rate           *float64       `json:"rate,omitempty"` // one-off services only
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Location       string         `json:"location"`
	PortfolioLinks pq.StringArray `gorm:"type:text[]" json:"portfolio_links"`
	IsInvited      bool           `gorm:"default:false" json:"is_invited"`
}

// Validate enforces that a rate is only set when the talent offers one-off work.
func (p *TalentProfile) Validate() error {
	if !p.Status.IsValid() {
		return ErrInvalidTalentStatus
	}
	if p.Rate != nil {
		if !p.Status.OffersOneOff() {
			return ErrRateNotApplicable
		}
		if *p.Rate < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

// OneOffRate returns the rate when it is meaningful for the profile's status.
func (p *TalentProfile) OneOffRate() (float64, bool) {
	if p.Rate == nil || !p.Status.OffersOneOff() {
		return 0, false
	}
	return *p.Rate, true
}
