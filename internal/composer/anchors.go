package composer

// Section is one navigable part of the portfolio page. The anchor IDs are
// stable: the chat prompt and the rendered page must agree on them for the
// model's markdown links to land anywhere.
type Section struct {
	Key    string // logical key: about, skills, education, projects, contact
	Anchor string // HTML element id, also the markdown link target
	Label  string // display label and link text
}

// Sections lists the five portfolio sections in page order.
var Sections = []Section{
	{Key: "about", Anchor: "about-me", Label: "About Me"},
	{Key: "skills", Anchor: "my-skills", Label: "My Skills"},
	{Key: "education", Anchor: "my-education", Label: "My Education"},
	{Key: "projects", Anchor: "my-projects", Label: "My Projects"},
	{Key: "contact", Anchor: "contact-me", Label: "Contact Me"},
}
