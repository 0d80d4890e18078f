package services

// AnalysisPrompt feeds the strategic analysis prompt. An empty Persona falls
// back to the catalogue's default persona.
type AnalysisPrompt struct {
	Persona string
	Format  string
	Text    string
}

// GenerationPrompt feeds the filing generation prompt.
type GenerationPrompt struct {
	Persona           string
	FilingType        string
	RecommendedAction string
	CaseSide          string
	Plaintiff         string
	Defendant         string
	ProcessNumber     string
	LegalGrounds      string
	Observations      string
	Tone              string
}

// PromptBuilder renders the prompts sent to the language model.
type PromptBuilder interface {
	AnalysisPrompt(p AnalysisPrompt) (string, error)
	GenerationPrompt(p GenerationPrompt) (string, error)
	OrganizationPrompt(text string) (string, error)
	AgentTestPrompt(instructions, text string) (string, error)
}
