package domain

// Language is a top-level named subject of study, e.g. a programming language.
// Titles are unique across all languages (case-sensitive exact match).
type Language struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Topic is a unit of learning content scoped to exactly one Language.
// Titles are unique within the owning language; Closed marks completion.
type Topic struct {
	ID         string `json:"id"`
	LanguageID string `json:"language_id"`
	Title      string `json:"title"`
	Closed     bool   `json:"closed"`
}

// LanguageStats is the per-language topic count aggregate.
// Count may be zero for a language with no topics.
type LanguageStats struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}
