package domain

import (
	"strings"
	"unicode"
)

// HeuristicBondType is reported for formulas that are not in the catalog.
const HeuristicBondType = "Covalent (heuristic)"

// MoleculeRecord holds the pre-authored bonding facts for one molecule.
// Records are built once when the catalog loads and are never mutated.
type MoleculeRecord struct {
	// Formula is the display formula, e.g. "NaCl". The lookup key is
	// NormalizeFormula(Formula).
	Formula     string
	Name        string
	BondType    string
	BondAngle   *float64
	SingleBonds int
	DoubleBonds int
	Shape       string
	Explanation string

	// Lewis is the short textual Lewis description ("O=C=O").
	Lewis string

	// LewisText is the longer descriptive Lewis-structure sentence.
	LewisText string

	// LewisASCII is the multi-line ASCII-art diagram.
	LewisASCII string
}

// Key returns the normalized lookup key for the record.
func (m *MoleculeRecord) Key() string {
	return NormalizeFormula(m.Formula)
}

// HasAngle reports whether a bond angle is recorded.
func (m *MoleculeRecord) HasAngle() bool {
	return m.BondAngle != nil
}

// MoleculeAnalysis is the result of analyzing a submitted formula.
type MoleculeAnalysis struct {
	Formula     string
	Name        *string
	BondType    string
	BondAngle   *float64
	SingleBonds int
	DoubleBonds int
	Shape       *string
	Explanation string
	LewisText   string
	LewisASCII  string
	LewisImage  string

	// Known is false when the analysis was synthesized heuristically.
	Known bool
}

// NormalizeFormula folds a user-supplied formula into a lookup key:
// all whitespace is removed, middle dots become periods, and the
// remainder is upper-cased.
func NormalizeFormula(formula string) string {
	var b strings.Builder

	b.Grow(len(formula))

	for _, r := range formula {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '·':
			b.WriteByte('.')
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}

	return b.String()
}

// HeuristicRecord synthesizes a placeholder record for a normalized formula
// that the catalog does not know.
func HeuristicRecord(normalized string) *MoleculeRecord {
	return &MoleculeRecord{
		Formula:     normalized,
		BondType:    HeuristicBondType,
		Explanation: "This is a generic estimate. For exact details, try a common molecule from the examples.",
		Lewis:       "Lewis structure depends on valence counts for " + normalized + ".",
		LewisText: "Lewis structure for " + normalized +
			" is not in the quick database. Try H2O, CO2, CH4, NH3, or NaCl.",
		LewisASCII: normalized,
	}
}
