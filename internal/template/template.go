// Package template holds the static catalog of document types and the
// system prompts that drive generation for each of them.
package template

// Template describes one document genre: its prompt fragment plus
// the metadata the front ends need to present it.
type Template struct {
	Name         string
	DisplayName  string
	Description  string
	SystemPrompt string
	// Placeholder is example input shown in the empty notes area.
	Placeholder string
}

// Templates is the fixed, ordered catalog. The last entry ("general")
// doubles as the fallback for unknown lookups.
var Templates = []Template{
	{
		Name:        "formal_letter",
		DisplayName: "Formal Letter",
		Description: "Business correspondence, requests, official letters",
		SystemPrompt: "You are a professional letter writer. Generate a formal business letter " +
			"based on the user's notes and bullet points. Use proper letter format with " +
			"date, recipient address placeholder, salutation, body paragraphs, and closing. " +
			"Tone should be professional, clear, and courteous. " +
			"Output plain text only - no markdown formatting.",
		Placeholder: "Recipient: John Smith, ABC Corp\nPurpose: Request meeting to discuss Q2 results\nKey points: revenue up 15%, new product launch in March",
	},
	{
		Name:        "memo",
		DisplayName: "Memo",
		Description: "Internal communications, policy announcements",
		SystemPrompt: "You are an internal communications writer. Generate a professional memo " +
			"based on the user's notes. Use standard memo format: TO, FROM, DATE, " +
			"SUBJECT header, then clear body paragraphs. Keep it concise and action-oriented. " +
			"Output plain text only - no markdown formatting.",
		Placeholder: "To: All staff\nSubject: New remote work policy\nKey changes: 3 days in office, flexible hours, equipment stipend",
	},
	{
		Name:        "report",
		DisplayName: "Report",
		Description: "Research findings, analysis, structured reports",
		SystemPrompt: "You are a report writer. Generate a structured report based on the user's notes. " +
			"Include a title, executive summary, main sections with clear headings, and a " +
			"conclusion or recommendations section. Use professional, analytical tone. " +
			"Output plain text only - no markdown formatting. Use ALL CAPS for section headings.",
		Placeholder: "Topic: Q4 Sales Performance\nFindings: Revenue $2.3M (up 12%), top product: Widget Pro, weak region: Northeast\nRecommendation: Increase Northeast marketing budget",
	},
	{
		Name:        "email_draft",
		DisplayName: "Email Draft",
		Description: "Professional emails, follow-ups, introductions",
		SystemPrompt: "You are an email writer. Generate a professional email based on the user's notes. " +
			"Include a clear subject line suggestion, appropriate greeting, concise body, " +
			"and professional sign-off. Keep it brief and action-oriented. " +
			"Output plain text only - no markdown formatting.",
		Placeholder: "To: Client (Sarah)\nContext: Follow up on proposal sent last week\nAsk: Schedule call to discuss questions, available Tue/Wed afternoon",
	},
	{
		Name:        "thank_you",
		DisplayName: "Thank You Note",
		Description: "Gratitude, acknowledgments, appreciation",
		SystemPrompt: "You are writing a thoughtful thank-you note. Based on the user's notes, " +
			"generate a warm, sincere thank-you message. Be specific about what you're " +
			"thanking them for and why it matters. Keep it genuine and heartfelt. " +
			"Output plain text only - no markdown formatting.",
		Placeholder: "Who: Dr. Martinez\nWhat: Excellent care during hospital stay\nSpecifics: Always took time to explain, very reassuring",
	},
	{
		Name:        "meeting_summary",
		DisplayName: "Meeting Summary",
		Description: "Meeting notes to structured minutes",
		SystemPrompt: "You are a meeting minutes writer. Convert the user's rough meeting notes " +
			"into a structured meeting summary. Include: Meeting title, Date, Attendees " +
			"(if provided), Key Discussion Points, Decisions Made, and Action Items " +
			"with owners (if mentioned). Use clear, concise language. " +
			"Output plain text only - no markdown formatting. Use ALL CAPS for section headings.",
		Placeholder: "Meeting: Weekly team standup, Jan 29\nAttendees: Kent, Sarah, Mike\nDiscussed: Project deadline moved to Feb 15, need extra QA\nAction: Mike to hire contractor, Sarah to update timeline",
	},
	{
		Name:        "personal_letter",
		DisplayName: "Personal Letter",
		Description: "Family, friends, personal correspondence",
		SystemPrompt: "You are helping write a personal letter. Based on the user's notes, " +
			"generate a warm, friendly letter suitable for family or friends. " +
			"Match the tone to the relationship described. Be natural and conversational. " +
			"Output plain text only - no markdown formatting.",
		Placeholder: "To: My grandson Alex\nOccasion: His college graduation\nThemes: Proud of him, remember when he was little, excited for his future",
	},
	{
		Name:        "general",
		DisplayName: "General Document",
		Description: "Freeform writing, no structure imposed",
		SystemPrompt: "You are a versatile writer. Based on the user's notes and bullet points, " +
			"generate a well-written document. Infer the appropriate tone, structure, " +
			"and format from the content. Write clearly and professionally. " +
			"Output plain text only - no markdown formatting.",
		Placeholder: "Write about anything - enter your notes, ideas, or bullet points here",
	},
}

// Tones are the selectable tone adjectives appended to the prompt.
var Tones = []string{
	"Formal",
	"Professional",
	"Friendly",
	"Casual",
	"Academic",
	"Persuasive",
}

// ByName looks up a template by its internal name. Unknown or empty
// names fall back to the catalog's last entry (General Document);
// lookup never fails.
func ByName(name string) Template {
	for _, t := range Templates {
		if t.Name == name {
			return t
		}
	}
	return Templates[len(Templates)-1]
}
