// Package ports defines the interfaces the application layer depends on.
// Adapters (the embedded catalog, the SVG renderer, random sources)
// implement them; services never import adapters directly.
package ports

import (
	"github.com/jsamuelsen/chembond-tutor/internal/domain"
)

// MoleculeCatalog is the read-only molecule knowledge base.
type MoleculeCatalog interface {
	// Lookup normalizes formula and returns the matching record.
	// A miss is reported with ok=false, never an error.
	Lookup(formula string) (rec domain.MoleculeRecord, ok bool)

	// Molecules returns every record in catalog order. Chat matching
	// depends on this order being stable.
	Molecules() []domain.MoleculeRecord
}

// ConceptGlossary is the read-only bonding-concept glossary.
type ConceptGlossary interface {
	// Concepts returns glossary entries in catalog order.
	Concepts() []domain.Concept
}

// QuizBank provides the quiz templates grouped by topic.
type QuizBank interface {
	// Topic returns the named topic, matched case-insensitively after trimming.
	// Returns domain.ErrNotFound for unknown topics.
	Topic(name string) (*domain.Topic, error)

	// Topics returns the topic names in catalog order.
	Topics() []string
}

// DiagramRenderer turns an ASCII-art diagram into an embeddable image URI.
// Implementations must be deterministic and must never fail.
type DiagramRenderer interface {
	Render(label, ascii string) string
}

// Shuffler is the pseudorandom permutation source used by quiz generation.
// *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}
