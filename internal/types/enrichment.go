package types

// SkillDescription pairs a skill with a generated one-line description.
// Slice order is display order and comes from the language model.
type SkillDescription struct {
	Name string `json:"lang"`
	Line string `json:"line"`
}

// SkillDescriptions is the reply envelope requested from the language model
type SkillDescriptions struct {
	Skills []SkillDescription `json:"skills"`
}

// LanguageStats maps a programming language to its total byte count across repositories
type LanguageStats map[string]int

// Snapshot captures everything fetched and generated for one resume build,
// so it can be rendered again without network access
type Snapshot struct {
	Profile           Profile            `json:"profile"`
	Skills            []Skill            `json:"skills"`
	SkillDescriptions []SkillDescription `json:"skill_descriptions"`
	LanguageStats     LanguageStats      `json:"language_stats,omitempty"`
}
