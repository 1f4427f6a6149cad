package domain

// Quiz size limits.
const (
	MinQuizCount     = 1
	MaxQuizCount     = 10
	DefaultQuizCount = 5
)

// QuizTemplate is an authored multiple-choice question.
// Answer is the index of the correct entry in Options.
type QuizTemplate struct {
	Question    string
	Options     []string
	Answer      int
	Explanation string
}

// CorrectOption returns the text of the correct option.
func (t *QuizTemplate) CorrectOption() string {
	return t.Options[t.Answer]
}

// Topic is a named, ordered group of quiz templates.
type Topic struct {
	Name      string
	Templates []QuizTemplate
}

// QuizItem is a question prepared for one response. CorrectIndex refers to
// the reordered Options.
type QuizItem struct {
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// ClampQuizCount bounds a requested quiz size to [MinQuizCount, MaxQuizCount].
func ClampQuizCount(count int) int {
	return max(MinQuizCount, min(MaxQuizCount, count))
}

// FallbackTemplates returns the generic question pair used for topics the
// quiz bank does not know. The first question mentions the requested topic.
func FallbackTemplates(topic string) []QuizTemplate {
	return []QuizTemplate{
		{
			Question:    "Basic question on " + topic + ": Covalent bonds are formed by…",
			Options:     []string{"Sharing electrons", "Transferring electrons", "Sharing protons", "Magnetic forces"},
			Answer:      0,
			Explanation: "Covalent = sharing of electron pairs.",
		},
		{
			Question:    "Ionic bonds usually form between…",
			Options:     []string{"Metals and nonmetals", "Two nonmetals", "Two metals", "Noble gases"},
			Answer:      0,
			Explanation: "Metal + nonmetal → electron transfer.",
		},
	}
}
