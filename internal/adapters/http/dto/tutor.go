package dto

import "github.com/jsamuelsen/chembond-tutor/internal/domain"

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"notempty"`
}

// ChatResponse carries the tutor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// QuizRequest is the body of POST /api/v1/quiz. A blank topic yields the
// generic fallback questions; an omitted count uses the configured default.
type QuizRequest struct {
	Topic string `json:"topic"`
	Count *int   `json:"count"`
}

// QuizItem is one multiple-choice question.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// QuizResponse wraps the generated items.
type QuizResponse struct {
	Items []QuizItem `json:"items"`
}

// NewQuizResponse converts domain quiz items.
func NewQuizResponse(items []domain.QuizItem) *QuizResponse {
	resp := &QuizResponse{Items: make([]QuizItem, len(items))}
	for i, it := range items {
		resp.Items[i] = QuizItem{
			Question:     it.Question,
			Options:      it.Options,
			CorrectIndex: it.CorrectIndex,
			Explanation:  it.Explanation,
		}
	}

	return resp
}

// TopicsResponse lists quiz topics.
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// MoleculeRequest is the body of POST /api/v1/molecule/analyze.
type MoleculeRequest struct {
	Formula string `json:"formula" validate:"notempty"`
}

// MoleculeResponse is the analysis of one formula. Pointer fields encode as
// null when the value is unknown.
type MoleculeResponse struct {
	Formula     string   `json:"formula"`
	Name        *string  `json:"name"`
	BondType    string   `json:"bond_type"`
	BondAngle   *float64 `json:"bond_angle"`
	SingleBonds int      `json:"single_bonds"`
	DoubleBonds int      `json:"double_bonds"`
	Shape       *string  `json:"shape"`
	Explanation string   `json:"explanation"`
	LewisText   string   `json:"lewis_text"`
	LewisASCII  string   `json:"lewis_ascii"`
	LewisSVG    string   `json:"lewis_svg"`
}

// NewMoleculeResponse converts a domain analysis.
func NewMoleculeResponse(a *domain.MoleculeAnalysis) *MoleculeResponse {
	return &MoleculeResponse{
		Formula:     a.Formula,
		Name:        a.Name,
		BondType:    a.BondType,
		BondAngle:   a.BondAngle,
		SingleBonds: a.SingleBonds,
		DoubleBonds: a.DoubleBonds,
		Shape:       a.Shape,
		Explanation: a.Explanation,
		LewisText:   a.LewisText,
		LewisASCII:  a.LewisASCII,
		LewisSVG:    a.LewisImage,
	}
}

// MoleculeSummary is one entry of the molecule listing.
type MoleculeSummary struct {
	Formula  string  `json:"formula"`
	Name     *string `json:"name"`
	BondType string  `json:"bond_type"`
}

// MoleculesResponse lists the catalog's molecules.
type MoleculesResponse struct {
	Molecules []MoleculeSummary `json:"molecules"`
}

// NewMoleculesResponse converts catalog records.
func NewMoleculesResponse(records []domain.MoleculeRecord) *MoleculesResponse {
	resp := &MoleculesResponse{Molecules: make([]MoleculeSummary, len(records))}
	for i := range records {
		resp.Molecules[i] = MoleculeSummary{
			Formula:  records[i].Formula,
			BondType: records[i].BondType,
		}
		if records[i].Name != "" {
			resp.Molecules[i].Name = &records[i].Name
		}
	}

	return resp
}

// Concept is one glossary entry.
type Concept struct {
	Keyword     string `json:"keyword"`
	Explanation string `json:"explanation"`
}

// ConceptsResponse lists the bonding glossary.
type ConceptsResponse struct {
	Concepts []Concept `json:"concepts"`
}

// NewConceptsResponse converts glossary entries.
func NewConceptsResponse(concepts []domain.Concept) *ConceptsResponse {
	resp := &ConceptsResponse{Concepts: make([]Concept, len(concepts))}
	for i, c := range concepts {
		resp.Concepts[i] = Concept{Keyword: c.Keyword, Explanation: c.Explanation}
	}

	return resp
}

// MessageResponse is a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusReport is the legacy /test payload.
type StatusReport struct {
	Backend      string `json:"backend"`
	Database     string `json:"database"`
	DatabaseURL  string `json:"database_url"`
	DatabaseName string `json:"database_name"`
}
