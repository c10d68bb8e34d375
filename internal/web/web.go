package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	SiteName  = "Creator Crewz"
	PageTitle = "Creator Crewz - Find & Hire Creative Talent"
)

// Template names.
const (
	LandingPage = "landing"
	SignupPage  = "signup"
	WelcomePage = "welcome"
)

type Feature struct {
	Title       string
	Description string
}

var Features = []Feature{
	{"Curated Talent Pool", "Access pre-vetted professionals with proven track records in content creation"},
	{"Secure Escrow", "Safe payment processing with funds held in escrow until project completion"},
	{"Flexible Hiring", "One-off projects or long-term partnerships - choose what works for you"},
	{"Quality Assurance", "Review system ensures you only work with the best talent"},
	{"Fast Matching", "Advanced filtering to find the perfect match for your project needs"},
	{"Team Management", "Built-in tools to manage your creative team and track project progress"},
}

// LoadTemplates parses every embedded page. The result is meant for gin's SetHTMLTemplate.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"siteName":  func() string { return SiteName },
		"pageTitle": func() string { return PageTitle },
	}).ParseFS(templateFS, "templates/*.html")
}
