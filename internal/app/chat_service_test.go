package app

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/chembond-tutor/internal/domain"
	"github.com/jsamuelsen/chembond-tutor/internal/mocks"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/metrics"
)

const waterReply = "Molecule: H2O\n" +
	"Type of Bond: Polar covalent\n" +
	"Bond Angle: 104.5°\n" +
	"Explanation: Oxygen forms two polar covalent bonds with hydrogen. " +
	"Lone pairs on O push bonds, giving a bent shape and polarity."

const sulfurDioxideReply = "Molecule: SO2\n" +
	"Type of Bond: Polar covalent (resonance; average bond order >1)\n" +
	"Bond Angle: 119.0°\n" +
	"Explanation: Electron domains around S make a bent shape; polar due to asymmetry."

const oxygenReply = "Molecule: O2\n" +
	"Type of Bond: Non‑polar covalent (double bond)\n" +
	"Bond Angle: Not applicable for diatomic/ionic lattice\n" +
	"Explanation: Two identical atoms share electrons equally."

func newChatService(t *testing.T) *ChatService {
	t.Helper()

	c := loadCatalog(t)

	return NewChatService(ChatServiceConfig{Molecules: c, Glossary: c, Logger: discardLogger()})
}

func TestNewChatService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewChatService(ChatServiceConfig{})
	})

	assert.Panics(t, func() {
		NewChatService(ChatServiceConfig{Molecules: mocks.NewMockMoleculeCatalog(t)})
	})
}

func TestChatService_Answer(t *testing.T) {
	svc := newChatService(t)

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"formula mention", "Why is H2O polar?", waterReply},
		{"name mention", "tell me about WATER", waterReply},
		{"surrounding whitespace", "   h2o   ", waterReply},
		{
			name:    "concept keyword",
			message: "Explain ionic bonding",
			want: "Ionic bonding happens when a metal transfers electrons to a nonmetal, " +
				"forming oppositely charged ions that attract. Example: NaCl (sodium chloride).",
		},
		{"longer formula wins over contained one", "Why is SO2 polar?", sulfurDioxideReply},
		{"contained formula alone", "is o2 reactive", oxygenReply},
		{"definition without known term", "What is electronegativity?", HelpReply},
		{"define intent", "define polarity", HelpReply},
		{"unrelated", "hello there", FallbackReply},
		{"empty", "", FallbackReply},
		{"only whitespace", " \t\n ", FallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Answer(context.Background(), tt.message))
		})
	}
}

func TestChatService_Answer_NoAngle(t *testing.T) {
	svc := newChatService(t)

	reply := svc.Answer(context.Background(), "nacl")

	assert.Equal(t, "Molecule: NaCl\n"+
		"Type of Bond: Ionic\n"+
		"Bond Angle: Not applicable for diatomic/ionic lattice\n"+
		"Explanation: Metal (Na) transfers an electron to nonmetal (Cl), forming oppositely charged ions that attract.",
		reply)
}

func TestChatService_Answer_MoleculeBeforeConcept(t *testing.T) {
	svc := newChatService(t)

	reply := svc.Answer(context.Background(), "is the bond in NaCl ionic?")

	assert.Contains(t, reply, "Molecule: NaCl")
}

func TestChatService_Answer_CatalogOrderWins(t *testing.T) {
	molecules := mocks.NewMockMoleculeCatalog(t)
	glossary := mocks.NewMockConceptGlossary(t)

	molecules.EXPECT().Molecules().Return([]domain.MoleculeRecord{
		{Formula: "A", Name: "", BondType: "first", Explanation: "x"},
		{Formula: "AB", Name: "", BondType: "second", Explanation: "y"},
	})

	svc := NewChatService(ChatServiceConfig{Molecules: molecules, Glossary: glossary, Logger: discardLogger()})

	reply := svc.Answer(context.Background(), "ab")

	assert.Contains(t, reply, "Type of Bond: first")
}

func TestChatService_Answer_EmptyNameNeverMatches(t *testing.T) {
	molecules := mocks.NewMockMoleculeCatalog(t)
	glossary := mocks.NewMockConceptGlossary(t)

	molecules.EXPECT().Molecules().Return([]domain.MoleculeRecord{
		{Formula: "ZZ9", BondType: "none"},
	})
	glossary.EXPECT().Concepts().Return(nil)

	svc := NewChatService(ChatServiceConfig{Molecules: molecules, Glossary: glossary, Logger: discardLogger()})

	assert.Equal(t, FallbackReply, svc.Answer(context.Background(), "anything at all"))
}

func TestChatService_Answer_CountsReplyKinds(t *testing.T) {
	c := loadCatalog(t)
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	svc := NewChatService(ChatServiceConfig{Molecules: c, Glossary: c, Metrics: rec, Logger: discardLogger()})

	ctx := context.Background()
	svc.Answer(ctx, "H2O")
	svc.Answer(ctx, "ch4 shape")
	svc.Answer(ctx, "metallic")
	svc.Answer(ctx, "explain this")
	svc.Answer(ctx, "hi")

	want := `
# HELP chembond_chat_replies_total Chat replies by the rule that produced them.
# TYPE chembond_chat_replies_total counter
chembond_chat_replies_total{kind="concept"} 1
chembond_chat_replies_total{kind="fallback"} 1
chembond_chat_replies_total{kind="help"} 1
chembond_chat_replies_total{kind="molecule"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "chembond_chat_replies_total"))
}
