package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/chembond-tutor/internal/domain"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/metrics"
	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

const (
	// HelpReply answers definition-style questions that named no known term.
	HelpReply = "I can help with bonding concepts (ionic, covalent, metallic, coordinate, hydrogen) " +
		"and common molecules like H2O, CO2, CH4, NH3, and NaCl. " +
		"Ask: 'Explain ionic bonding' or 'Why is H2O polar?'"

	// FallbackReply asks the student to name a concept or molecule.
	FallbackReply = "Great question! Could you specify the concept (e.g., ionic bonding) " +
		"or a molecule (e.g., H2O) you want to learn about?"

	noAngleText = "Not applicable for diatomic/ionic lattice"
)

var intentPhrases = []string{"what is", "explain", "define"}

// ChatService answers free-text chemistry questions from the catalog.
type ChatService struct {
	molecules ports.MoleculeCatalog
	glossary  ports.ConceptGlossary
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

// ChatServiceConfig contains the dependencies of the chat service.
type ChatServiceConfig struct {
	Molecules ports.MoleculeCatalog
	Glossary  ports.ConceptGlossary
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
}

// NewChatService creates a chat service. It panics if the catalog or the
// glossary is missing.
func NewChatService(cfg ChatServiceConfig) *ChatService {
	if cfg.Molecules == nil || cfg.Glossary == nil {
		panic("app: chat service requires a molecule catalog and a concept glossary")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ChatService{
		molecules: cfg.Molecules,
		glossary:  cfg.Glossary,
		metrics:   cfg.Metrics,
		logger:    logger,
	}
}

// Answer returns a reply for message. The first matching rule wins:
// molecule mention, glossary keyword, definition-style question, fallback.
func (s *ChatService) Answer(ctx context.Context, message string) string {
	_, span := tracer.Start(ctx, "ChatService.Answer")
	defer span.End()

	reply, kind := s.answer(strings.ToLower(strings.TrimSpace(message)))

	span.SetAttributes(attribute.String("chat.reply_kind", kind))
	s.metrics.ChatReply(kind)
	s.logger.DebugContext(ctx, "chat reply selected", slog.String("kind", kind))

	return reply
}

func (s *ChatService) answer(msg string) (reply, kind string) {
	for _, m := range s.molecules.Molecules() {
		if mentions(msg, m) {
			return describeMolecule(&m), metrics.ReplyMolecule
		}
	}

	for _, c := range s.glossary.Concepts() {
		if strings.Contains(msg, c.Keyword) {
			return c.Explanation, metrics.ReplyConcept
		}
	}

	for _, p := range intentPhrases {
		if strings.Contains(msg, p) {
			return HelpReply, metrics.ReplyHelp
		}
	}

	return FallbackReply, metrics.ReplyFallback
}

// mentions reports whether the lower-cased message names the molecule by
// formula or by common name. Empty names never match.
func mentions(msg string, m domain.MoleculeRecord) bool {
	if f := strings.ToLower(m.Formula); f != "" && strings.Contains(msg, f) {
		return true
	}

	n := strings.ToLower(m.Name)

	return n != "" && strings.Contains(msg, n)
}

func describeMolecule(m *domain.MoleculeRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Molecule: %s\nType of Bond: %s\n", m.Formula, m.BondType)

	if m.HasAngle() {
		fmt.Fprintf(&b, "Bond Angle: %.1f°\n", *m.BondAngle)
	} else {
		b.WriteString("Bond Angle: " + noAngleText + "\n")
	}

	b.WriteString("Explanation: " + m.Explanation)

	return b.String()
}
