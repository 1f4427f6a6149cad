package domain

// Concept is a glossary entry matched by keyword in chat messages.
type Concept struct {
	Keyword     string
	Explanation string
}
