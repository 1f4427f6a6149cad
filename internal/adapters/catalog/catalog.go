// Package catalog provides the static chemistry knowledge base: molecule
// records, the bonding glossary and the quiz bank. The default catalog is
// embedded in the binary; an operator may point the service at a replacement
// YAML file with the same layout.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/chembond-tutor/internal/domain"
)

//go:embed catalog.yaml
var embedded []byte

// minQuizOptions is the smallest option list a quiz template may carry.
const minQuizOptions = 2

// ErrInvalidCatalog is returned when the catalog document violates an invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// document mirrors the YAML layout of catalog.yaml.
type document struct {
	Molecules []moleculeEntry `yaml:"molecules"`
	Concepts  []conceptEntry  `yaml:"concepts"`
	Topics    []topicEntry    `yaml:"topics"`
}

type moleculeEntry struct {
	Formula     string   `yaml:"formula"`
	Name        string   `yaml:"name"`
	BondType    string   `yaml:"bond_type"`
	BondAngle   *float64 `yaml:"bond_angle"`
	SingleBonds int      `yaml:"single_bonds"`
	DoubleBonds int      `yaml:"double_bonds"`
	Shape       string   `yaml:"shape"`
	Lewis       string   `yaml:"lewis"`
	LewisText   string   `yaml:"lewis_text"`
	Explanation string   `yaml:"explanation"`
	LewisASCII  string   `yaml:"lewis_ascii"`
}

type conceptEntry struct {
	Keyword     string `yaml:"keyword"`
	Explanation string `yaml:"explanation"`
}

type topicEntry struct {
	Name      string          `yaml:"name"`
	Questions []questionEntry `yaml:"questions"`
}

type questionEntry struct {
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Answer      int      `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
}

// Catalog is an immutable, concurrency-safe knowledge base.
// It implements ports.MoleculeCatalog, ports.ConceptGlossary,
// ports.QuizBank and ports.HealthChecker.
type Catalog struct {
	molecules []domain.MoleculeRecord
	index     map[string]int
	concepts  []domain.Concept
	topics    []domain.Topic
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(bytes.NewReader(embedded))
}

// LoadFile decodes a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %q: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}

	return c, nil
}

// Parse decodes and validates a catalog document. Unknown keys are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return build(&doc)
}

func build(doc *document) (*Catalog, error) {
	c := &Catalog{
		molecules: make([]domain.MoleculeRecord, 0, len(doc.Molecules)),
		index:     make(map[string]int, len(doc.Molecules)),
		concepts:  make([]domain.Concept, 0, len(doc.Concepts)),
		topics:    make([]domain.Topic, 0, len(doc.Topics)),
	}

	for i, m := range doc.Molecules {
		rec := domain.MoleculeRecord{
			Formula:     strings.TrimSpace(m.Formula),
			Name:        m.Name,
			BondType:    m.BondType,
			BondAngle:   m.BondAngle,
			SingleBonds: m.SingleBonds,
			DoubleBonds: m.DoubleBonds,
			Shape:       m.Shape,
			Explanation: m.Explanation,
			Lewis:       m.Lewis,
			LewisText:   m.LewisText,
			LewisASCII:  m.LewisASCII,
		}

		key := rec.Key()

		switch {
		case key == "":
			return nil, fmt.Errorf("%w: molecule %d has no formula", ErrInvalidCatalog, i)
		case rec.BondType == "":
			return nil, fmt.Errorf("%w: molecule %s has no bond type", ErrInvalidCatalog, rec.Formula)
		case rec.SingleBonds < 0 || rec.DoubleBonds < 0:
			return nil, fmt.Errorf("%w: molecule %s has negative bond counts", ErrInvalidCatalog, rec.Formula)
		}

		if prev, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: molecule %s duplicates %s after normalization",
				ErrInvalidCatalog, rec.Formula, c.molecules[prev].Formula)
		}

		c.index[key] = len(c.molecules)
		c.molecules = append(c.molecules, rec)
	}

	if err := checkShadowing(c.molecules); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doc.Concepts))
	for _, e := range doc.Concepts {
		kw := strings.ToLower(strings.TrimSpace(e.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("%w: concept with empty keyword", ErrInvalidCatalog)
		}

		if _, dup := seen[kw]; dup {
			return nil, fmt.Errorf("%w: duplicate concept %q", ErrInvalidCatalog, kw)
		}

		seen[kw] = struct{}{}
		c.concepts = append(c.concepts, domain.Concept{Keyword: kw, Explanation: e.Explanation})
	}

	for _, t := range doc.Topics {
		topic, err := buildTopic(t)
		if err != nil {
			return nil, err
		}

		c.topics = append(c.topics, topic)
	}

	return c, nil
}

// checkShadowing requires a formula that contains another to be listed
// first; chat matches mentions by substring in catalog order.
func checkShadowing(molecules []domain.MoleculeRecord) error {
	for i := range molecules {
		short := molecules[i].Key()

		for j := i + 1; j < len(molecules); j++ {
			if strings.Contains(molecules[j].Key(), short) {
				return fmt.Errorf("%w: molecule %s shadows %s; list %s first",
					ErrInvalidCatalog, molecules[i].Formula, molecules[j].Formula, molecules[j].Formula)
			}
		}
	}

	return nil
}

func buildTopic(t topicEntry) (domain.Topic, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return domain.Topic{}, fmt.Errorf("%w: topic with empty name", ErrInvalidCatalog)
	}

	if len(t.Questions) == 0 {
		return domain.Topic{}, fmt.Errorf("%w: topic %q has no questions", ErrInvalidCatalog, name)
	}

	topic := domain.Topic{
		Name:      name,
		Templates: make([]domain.QuizTemplate, 0, len(t.Questions)),
	}

	for i, q := range t.Questions {
		if len(q.Options) < minQuizOptions {
			return domain.Topic{}, fmt.Errorf("%w: topic %q question %d needs at least %d options",
				ErrInvalidCatalog, name, i, minQuizOptions)
		}

		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return domain.Topic{}, fmt.Errorf("%w: topic %q question %d answer index %d out of range",
				ErrInvalidCatalog, name, i, q.Answer)
		}

		topic.Templates = append(topic.Templates, domain.QuizTemplate{
			Question:    q.Question,
			Options:     slices.Clone(q.Options),
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}

	return topic, nil
}

// Lookup returns the record for formula after normalization.
func (c *Catalog) Lookup(formula string) (domain.MoleculeRecord, bool) {
	i, ok := c.index[domain.NormalizeFormula(formula)]
	if !ok {
		return domain.MoleculeRecord{}, false
	}

	return c.molecules[i], true
}

// Molecules returns all records in catalog order.
func (c *Catalog) Molecules() []domain.MoleculeRecord {
	return slices.Clone(c.molecules)
}

// Concepts returns the glossary in catalog order.
func (c *Catalog) Concepts() []domain.Concept {
	return slices.Clone(c.concepts)
}

// Topic returns the quiz topic whose name matches case-insensitively.
func (c *Catalog) Topic(name string) (*domain.Topic, error) {
	name = strings.TrimSpace(name)

	for i := range c.topics {
		if strings.EqualFold(c.topics[i].Name, name) {
			t := c.topics[i]
			t.Templates = slices.Clone(t.Templates)

			return &t, nil
		}
	}

	return nil, domain.NewNotFoundError("topic", name)
}

// Topics returns topic names in catalog order.
func (c *Catalog) Topics() []string {
	names := make([]string, len(c.topics))
	for i := range c.topics {
		names[i] = c.topics[i].Name
	}

	return names
}

// Name identifies the catalog in readiness reports.
func (c *Catalog) Name() string {
	return "catalog"
}

// Check reports the catalog unhealthy when it holds no molecules.
func (c *Catalog) Check(_ context.Context) error {
	if len(c.molecules) == 0 {
		return domain.NewUnavailableError("catalog", "no molecules loaded")
	}

	return nil
}
