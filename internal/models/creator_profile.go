package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type CreatorProfile struct {
	BaseModel
	UserID      string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	CompanyName *string        `json:"company_name,omitempty"`
	Bio         *string        `json:"bio,omitempty"`
	Website     *string        `json:"website,omitempty"`
	SocialLinks datatypes.JSON `json:"social_links,omitempty"`
}

// SetSocialLinks stores links as a JSON array; nil clears the column.
func (p *CreatorProfile) SetSocialLinks(links []string) error {
	if links == nil {
		p.SocialLinks = nil
		return nil
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return err
	}
	p.SocialLinks = datatypes.JSON(raw)
	return nil
}

func (p *CreatorProfile) Links() ([]string, error) {
	if len(p.SocialLinks) == 0 {
		return nil, nil
	}
	var links []string
	if err := json.Unmarshal(p.SocialLinks, &links); err != nil {
		return nil, err
	}
	return links, nil
}
