package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/chembond-tutor/internal/domain"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/metrics"
	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

// svgDataURIPrefix is the prefix every rendered diagram must carry.
const svgDataURIPrefix = "data:image/svg+xml;base64,"

// errBadDiagram is returned by the verify step when the renderer produced
// something other than an SVG data URI.
var errBadDiagram = errors.New("renderer did not produce an SVG data URI")

// MoleculeService analyzes submitted formulas against the catalog.
type MoleculeService struct {
	catalog  ports.MoleculeCatalog
	renderer ports.DiagramRenderer
	executor *Executor
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

// MoleculeServiceConfig contains the dependencies of the molecule service.
type MoleculeServiceConfig struct {
	Catalog  ports.MoleculeCatalog
	Renderer ports.DiagramRenderer
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// NewMoleculeService creates a molecule service. It panics without a
// catalog or a renderer.
func NewMoleculeService(cfg MoleculeServiceConfig) *MoleculeService {
	if cfg.Catalog == nil || cfg.Renderer == nil {
		panic("app: molecule service requires a catalog and a diagram renderer")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &MoleculeService{
		catalog:  cfg.Catalog,
		renderer: cfg.Renderer,
		executor: NewExecutor(logger),
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// lookup is the outcome of the perform step.
type lookup struct {
	record *domain.MoleculeRecord
	known  bool
}

// rendered is the outcome of the verify step.
type rendered struct {
	lookup
	image string
}

// Analyze reports bonding facts and a rendered Lewis diagram for formula.
// Unknown formulas get a heuristic analysis. A formula that is blank after
// normalization is a *domain.ValidationError.
func (s *MoleculeService) Analyze(ctx context.Context, formula string) (*domain.MoleculeAnalysis, error) {
	ctx, span := tracer.Start(ctx, "MoleculeService.Analyze")
	defer span.End()

	analysis, err := Execute(ctx, s.executor, s.analyzeOperation(), domain.NormalizeFormula(formula))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(
		attribute.String("molecule.formula", analysis.Formula),
		attribute.Bool("molecule.known", analysis.Known),
	)

	return analysis, nil
}

func (s *MoleculeService) analyzeOperation() Operation[string, lookup, rendered, *domain.MoleculeAnalysis] {
	return Operation[string, lookup, rendered, *domain.MoleculeAnalysis]{
		Name: "analyze_molecule",
		Validate: func(_ context.Context, normalized string) error {
			if normalized == "" {
				return domain.NewValidationError("formula", "must not be blank")
			}

			return nil
		},
		Perform: func(_ context.Context, normalized string) (lookup, error) {
			if rec, ok := s.catalog.Lookup(normalized); ok {
				return lookup{record: &rec, known: true}, nil
			}

			return lookup{record: domain.HeuristicRecord(normalized)}, nil
		},
		Verify: func(_ context.Context, _ string, l lookup) (rendered, error) {
			art := firstNonEmpty(l.record.LewisASCII, l.record.Lewis, l.record.Formula)

			image := s.renderer.Render(l.record.Formula, art)
			if !strings.HasPrefix(image, svgDataURIPrefix) {
				return rendered{}, errBadDiagram
			}

			return rendered{lookup: l, image: image}, nil
		},
		Archive: func(ctx context.Context, normalized string, r rendered) error {
			s.metrics.MoleculeLookup(r.known)
			s.logger.DebugContext(ctx, "molecule analyzed",
				slog.String("formula", normalized),
				slog.Bool("known", r.known),
			)

			return nil
		},
		Respond: func(_ context.Context, _ string, r rendered) (*domain.MoleculeAnalysis, error) {
			return toAnalysis(r), nil
		},
	}
}

func toAnalysis(r rendered) *domain.MoleculeAnalysis {
	rec := r.record

	a := &domain.MoleculeAnalysis{
		Formula:     rec.Formula,
		BondType:    rec.BondType,
		BondAngle:   rec.BondAngle,
		SingleBonds: rec.SingleBonds,
		DoubleBonds: rec.DoubleBonds,
		Explanation: rec.Explanation,
		LewisText:   firstNonEmpty(rec.LewisText, rec.Lewis),
		LewisASCII:  firstNonEmpty(rec.LewisASCII, rec.Lewis),
		LewisImage:  r.image,
		Known:       r.known,
	}

	if rec.Name != "" {
		a.Name = &rec.Name
	}

	if rec.Shape != "" {
		a.Shape = &rec.Shape
	}

	return a
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
