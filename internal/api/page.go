package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jashkothari/foliobot/internal/composer"
	"github.com/jashkothari/foliobot/internal/profile"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// pageSection pairs a navigable section with the profile content it renders.
type pageSection struct {
	Anchor string
	Label  string
	Lines  []string
}

type pageData struct {
	Profile  profile.Profile
	Sections []pageSection
	Version  string
}

func handlePage(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := deps.Store.Get()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "profile_error", "loading profile: %v", err)
			return
		}

		data := pageData{
			Profile:  p,
			Sections: buildSections(p),
			Version:  deps.Version,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			slog.Error("rendering page", "error", err)
		}
	}
}

// buildSections fills the five anchored sections with the profile content
// shown when a section is expanded. The anchor IDs come from the composer so
// the model's navigation links always have a target on the page.
func buildSections(p profile.Profile) []pageSection {
	sections := make([]pageSection, 0, len(composer.Sections))
	for _, s := range composer.Sections {
		ps := pageSection{Anchor: s.Anchor, Label: s.Label}
		switch s.Key {
		case "about":
			ps.Lines = []string{p.AboutMe}
		case "skills":
			ps.Lines = []string{strings.Join(p.Skills, ", ")}
		case "education":
			ps.Lines = []string{p.Education}
		case "projects":
			for _, proj := range p.Projects {
				ps.Lines = append(ps.Lines, proj.Name+" ("+string(proj.Category())+"): "+proj.Description)
			}
		case "contact":
			ps.Lines = []string{
				"Email: " + p.ContactEmail,
				"LinkedIn: " + p.LinkedInProfile,
			}
			if p.GitHubProfile != "" {
				ps.Lines = append(ps.Lines, "GitHub: "+p.GitHubProfile)
			}
			if p.PortfolioWebsite != "" {
				ps.Lines = append(ps.Lines, "Portfolio: "+p.PortfolioWebsite)
			}
		}
		sections = append(sections, ps)
	}
	return sections
}
