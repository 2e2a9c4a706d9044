package profile

import "strings"

// Profile mirrors the personal information file exactly. It describes the
// single subject the chatbot answers questions about.
type Profile struct {
	Name             string    `json:"name"`
	Occupation       string    `json:"occupation"`
	AboutMe          string    `json:"about_me"`
	Skills           []string  `json:"skills"`
	Education        string    `json:"education"`
	ContactEmail     string    `json:"contact_email"`
	LinkedInProfile  string    `json:"linkedin_profile"`
	GitHubProfile    string    `json:"github_profile"`
	PortfolioWebsite string    `json:"portfolio_website"`
	Projects         []Project `json:"projects"`
}

// Project is a single portfolio entry. Its category is derived from the
// name, never stored.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category labels a project as client or personal work.
type Category string

const (
	CategoryClient   Category = "Client Project"
	CategoryPersonal Category = "Personal Project"
)

// Category derives the project type: a project whose name contains the
// substring "client project" (case-insensitive) is client work, everything
// else is personal.
func (p Project) Category() Category {
	if strings.Contains(strings.ToLower(p.Name), "client project") {
		return CategoryClient
	}
	return CategoryPersonal
}
