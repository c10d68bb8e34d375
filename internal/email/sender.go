package email

import "creatorcrewz/internal/models"

// Sender composes the product's transactional emails.
type Sender struct {
	provider  Provider
	templates *Templates
}

func NewSender(provider Provider, templates *Templates) *Sender {
	return &Sender{provider: provider, templates: templates}
}

func (s *Sender) SendWelcome(user *models.User) error {
	roleName := "Content Creator"
	if user.Role == models.UserRoleTalent {
		roleName = "Talent"
	}

	html, text, err := s.templates.Render("welcome", TemplateData{
		"Email":    user.Email,
		"Role":     string(user.Role),
		"RoleName": roleName,
	})
	if err != nil {
		return err
	}

	return s.provider.Send(&Email{
		To:       []string{user.Email},
		Subject:  "Welcome to Creator Crewz",
		Body:     text,
		HTMLBody: html,
	})
}
