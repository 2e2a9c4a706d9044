package composer

import (
	"fmt"
	"strings"

	"github.com/jashkothari/foliobot/internal/profile"
)

// Compose builds the full prompt for one chat turn: identity statement,
// serialized profile facts, categorized project listing, behavior and
// navigation instructions, and the user's question. It is pure and
// deterministic: no prior turns are included, and conversational continuity
// comes entirely from re-injecting the same profile each turn.
func Compose(p profile.Profile, userQuery string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb,
		"You are an AI chatbot assistant of %[1]s. You were created by %[1]s to provide "+
			"accurate and helpful information about their professional background, skills, "+
			"education, and projects. Always introduce yourself with this identity if asked "+
			"'who are you?' or similar questions.\n\n", p.Name)

	fmt.Fprintf(&sb, "Here is key information about %s for you to reference:\n", p.Name)
	fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "- Occupation: %s\n", p.Occupation)
	fmt.Fprintf(&sb, "- About Me: %s\n", p.AboutMe)
	fmt.Fprintf(&sb, "- Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(&sb, "- Education: %s\n", p.Education)
	fmt.Fprintf(&sb, "- Contact Email: %s\n", p.ContactEmail)
	fmt.Fprintf(&sb, "- LinkedIn: %s\n", p.LinkedInProfile)
	fmt.Fprintf(&sb, "- GitHub: %s\n", p.GitHubProfile)
	fmt.Fprintf(&sb, "- Portfolio Website: %s\n", p.PortfolioWebsite)

	sb.WriteString("\nProjects:\n")
	for _, proj := range p.Projects {
		fmt.Fprintf(&sb, "- %s (%s): %s\n", proj.Name, proj.Category(), proj.Description)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, behaviorInstructions, p.Name)
	sb.WriteString("\n")
	sb.WriteString(navigationInstructions())

	fmt.Fprintf(&sb, "\nUser Query: %s", userQuery)
	return sb.String()
}

const behaviorInstructions = `Primary Goal: Answer user questions about %[1]s's professional profile using the provided information.

Specific Answering Instructions:
- If a user asks a factual question that can be directly answered from the provided information, provide the answer directly and concisely.
- For Projects: if asked about "client projects", "personal projects", or "different types of projects", list the relevant projects by their name and a brief description, clearly indicating their type (Client/Personal).
- If asked for a summary of a section (e.g., "summarize your skills"), provide a brief overview.
- If asked for contact information, provide the email, LinkedIn, GitHub, and portfolio website directly.

General Chat Behavior:
- Be polite, concise, and helpful.
- If the question is a general knowledge question not related to %[1]s, answer it to the best of your ability using your general knowledge, but maintain your persona as %[1]s's assistant.
- Do not invent information about %[1]s that is not explicitly provided. If you cannot find the answer in the provided information, simply state that you don't have that specific detail about %[1]s.
`

// navigationInstructions renders the link policy plus the section/anchor
// table. Links are offered only on explicit navigation requests; content
// questions get a direct answer first with the link as an optional extra.
func navigationInstructions() string {
	var sb strings.Builder
	sb.WriteString(`Navigation/Link Instructions (for specific requests ONLY):
- If the user explicitly asks to "go to", "show me", or "take me to" a specific section, you can provide a clickable Markdown link to that section.
- ONLY provide links if explicitly asked to navigate. Otherwise, provide direct answers.
- Here are the available sections and their corresponding anchor links:
`)
	for _, s := range Sections {
		fmt.Fprintf(&sb, "    - %[1]s: [%[1]s](#%[2]s)\n", s.Label, s.Anchor)
	}
	sb.WriteString("- If the user asks for content of a section, answer directly first, and then you can offer the relevant link for \"more details\" if applicable.\n")
	return sb.String()
}
