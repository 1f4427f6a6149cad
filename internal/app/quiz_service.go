package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/chembond-tutor/internal/domain"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/metrics"
	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

// QuizService builds randomized multiple-choice quizzes.
type QuizService struct {
	bank     ports.QuizBank
	shuffler ports.Shuffler
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

// QuizServiceConfig contains the dependencies of the quiz service.
// Shuffler defaults to GlobalShuffler.
type QuizServiceConfig struct {
	Bank     ports.QuizBank
	Shuffler ports.Shuffler
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// NewQuizService creates a quiz service. It panics without a quiz bank.
func NewQuizService(cfg QuizServiceConfig) *QuizService {
	if cfg.Bank == nil {
		panic("app: quiz service requires a quiz bank")
	}

	shuffler := cfg.Shuffler
	if shuffler == nil {
		shuffler = GlobalShuffler()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuizService{
		bank:     cfg.Bank,
		shuffler: shuffler,
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// Topics lists the topic names the quiz bank knows.
func (s *QuizService) Topics() []string {
	return s.bank.Topics()
}

// Generate returns exactly ClampQuizCount(count) items for topic. Unknown or
// blank topics get the generic fallback questions.
func (s *QuizService) Generate(ctx context.Context, topic string, count int) []domain.QuizItem {
	_, span := tracer.Start(ctx, "QuizService.Generate")
	defer span.End()

	count = domain.ClampQuizCount(count)
	topic = strings.TrimSpace(topic)

	templates, known := s.templates(ctx, topic)

	pool := make([]domain.QuizTemplate, 0, len(templates)*ceilDiv(count, len(templates)))
	for len(pool) < count {
		pool = append(pool, templates...)
	}

	s.shuffler.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	items := make([]domain.QuizItem, count)
	for i := range items {
		items[i] = s.prepare(&pool[i])
	}

	span.SetAttributes(
		attribute.String("quiz.topic", topic),
		attribute.Bool("quiz.topic_known", known),
		attribute.Int("quiz.count", count),
	)
	s.metrics.QuizItems(known, count)
	s.logger.DebugContext(ctx, "quiz generated",
		slog.String("topic", topic),
		slog.Bool("topic_known", known),
		slog.Int("count", count),
	)

	return items
}

func (s *QuizService) templates(ctx context.Context, topic string) ([]domain.QuizTemplate, bool) {
	t, err := s.bank.Topic(topic)
	if err == nil && len(t.Templates) > 0 {
		return t.Templates, true
	}

	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "quiz bank lookup failed, using fallback questions",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
	}

	return domain.FallbackTemplates(topic), false
}

// prepare shuffles a copy of the template's options and locates the correct
// answer in the new order. Duplicate option texts resolve to the first one.
func (s *QuizService) prepare(t *domain.QuizTemplate) domain.QuizItem {
	correct := t.CorrectOption()
	options := slices.Clone(t.Options)

	s.shuffler.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return domain.QuizItem{
		Question:     t.Question,
		Options:      options,
		CorrectIndex: slices.Index(options, correct),
		Explanation:  t.Explanation,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
