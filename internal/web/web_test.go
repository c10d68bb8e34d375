package web

import (
	"bytes"
	"testing"

	"creatorcrewz/internal/signup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestLandingPage(t *testing.T) {
	html := render(t, LandingPage, map[string]any{"Features": Features})

	assert.Contains(t, html, "<title>Creator Crewz - Find &amp; Hire Creative Talent</title>")
	for _, href := range []string{
		`href="/auth/signup?role=creator"`,
		`href="/auth/signup?role=talent"`,
		`href="/auth/signup"`,
		`href="/auth/signin"`,
	} {
		assert.Contains(t, html, href)
	}
	for _, f := range Features {
		assert.Contains(t, html, f.Title)
	}
	assert.Len(t, Features, 6)
}

func TestSignupPage_ChoosingRole(t *testing.T) {
	html := render(t, SignupPage, map[string]any{"Form": signup.NewForm("").Snapshot()})

	assert.Contains(t, html, "Choose your role")
	assert.Contains(t, html, `value="creator"`)
	assert.Contains(t, html, `value="talent"`)
	assert.Contains(t, html, "*Invite only for MVP")
	assert.NotContains(t, html, `name="password"`)
}

func TestSignupPage_Talent(t *testing.T) {
	form := signup.NewForm("talent")
	form.SetEmail("t@example.com")
	html := render(t, SignupPage, map[string]any{"Form": form.Snapshot()})

	assert.Contains(t, html, "Sign up as Talent")
	assert.Contains(t, html, "Invite Only")
	assert.Contains(t, html, `value="t@example.com"`)
	assert.Contains(t, html, `<button type="submit" disabled>Create account</button>`)
}

func TestSignupPage_CreatorWithError(t *testing.T) {
	form := signup.NewForm("creator")
	html := render(t, SignupPage, map[string]any{"Form": form.Snapshot()})

	assert.Contains(t, html, "Sign up as Content Creator")
	assert.Contains(t, html, `<button type="submit">Create account</button>`)
	assert.NotContains(t, html, "Invite Only")
	assert.NotContains(t, html, `role="alert"`)
}

func TestWelcomePage(t *testing.T) {
	html := render(t, WelcomePage, map[string]any{"Email": "a@example.com"})
	assert.Contains(t, html, "a@example.com")

	html = render(t, WelcomePage, map[string]any{})
	assert.Contains(t, html, "Your account is ready.")
}
