package email

import (
	"errors"
	"testing"

	"creatorcrewz/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	sent []*Email
	err  error
}

func (p *recordingProvider) Send(email *Email) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, email)
	return nil
}

func TestSender_SendWelcome(t *testing.T) {
	tpl, err := LoadTemplates()
	require.NoError(t, err)

	provider := &recordingProvider{}
	sender := NewSender(provider, tpl)

	require.NoError(t, sender.SendWelcome(&models.User{Email: "a@example.com", Role: models.UserRoleCreator}))
	require.Len(t, provider.sent, 1)

	msg := provider.sent[0]
	assert.Equal(t, []string{"a@example.com"}, msg.To)
	assert.Equal(t, "Welcome to Creator Crewz", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Content Creator")
	assert.Contains(t, msg.HTMLBody, "post jobs")
	assert.Contains(t, msg.Body, "Hi a@example.com")

	require.NoError(t, sender.SendWelcome(&models.User{Email: "t@example.com", Role: models.UserRoleTalent}))
	assert.Contains(t, provider.sent[1].Body, "invitation")
}

func TestSender_ProviderError(t *testing.T) {
	tpl, err := LoadTemplates()
	require.NoError(t, err)

	sender := NewSender(&recordingProvider{err: errors.New("smtp down")}, tpl)
	assert.Error(t, sender.SendWelcome(&models.User{Email: "a@example.com", Role: models.UserRoleCreator}))
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &LogProvider{}, NewProvider(nil))
	assert.IsType(t, &LogProvider{}, NewProvider(&SMTPConfig{}))
	assert.IsType(t, &SMTPProvider{}, NewProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587}))
}

func TestSMTPProvider_BuildMessage(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "hello@creatorcrewz.com", FromName: "Creator Crewz"})

	_, err := p.buildMessage(&Email{})
	assert.Error(t, err)

	m, err := p.buildMessage(&Email{To: []string{"a@example.com"}, Subject: "Hi", Body: "text", HTMLBody: "<p>html</p>"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hi"}, m.GetHeader("Subject"))
}

func TestLogProvider(t *testing.T) {
	p := &LogProvider{}
	assert.NoError(t, p.Send(&Email{To: []string{"a@example.com"}}))
	assert.Error(t, p.Send(&Email{}))
}
