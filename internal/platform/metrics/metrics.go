// Package metrics holds the Prometheus counters for tutoring events.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chembond"

// Chat reply kinds.
const (
	ReplyMolecule = "molecule"
	ReplyConcept  = "concept"
	ReplyHelp     = "help"
	ReplyFallback = "fallback"
)

// Lookup results.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Recorder counts domain events. A nil *Recorder is valid and records nothing.
type Recorder struct {
	chatReplies     *prometheus.CounterVec
	quizItems       *prometheus.CounterVec
	moleculeLookups *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_replies_total",
			Help:      "Chat replies by the rule that produced them.",
		}, []string{"kind"}),
		quizItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_items_total",
			Help:      "Quiz items generated, split by whether the topic was known.",
		}, []string{"topic_known"}),
		moleculeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "molecule_lookups_total",
			Help:      "Molecule analyses by catalog lookup result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{r.chatReplies, r.quizItems, r.moleculeLookups} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ChatReply counts one reply of the given kind.
func (r *Recorder) ChatReply(kind string) {
	if r == nil {
		return
	}

	r.chatReplies.WithLabelValues(kind).Inc()
}

// QuizItems counts n generated items.
func (r *Recorder) QuizItems(topicKnown bool, n int) {
	if r == nil {
		return
	}

	r.quizItems.WithLabelValues(strconv.FormatBool(topicKnown)).Add(float64(n))
}

// MoleculeLookup counts one analysis lookup.
func (r *Recorder) MoleculeLookup(hit bool) {
	if r == nil {
		return
	}

	result := LookupMiss
	if hit {
		result = LookupHit
	}

	r.moleculeLookups.WithLabelValues(result).Inc()
}
