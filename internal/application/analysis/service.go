package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bryanwahyu/venture-insight/internal/application"
	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
	"github.com/bryanwahyu/venture-insight/internal/infra/ai/prompt"
)

// DefaultSectionTimeout bounds each external call so a stalled completion
// becomes a section error marker instead of hanging the whole run.
const DefaultSectionTimeout = 90 * time.Second

// Service orchestrates analysis runs: one text-generation call per section,
// assembled into a Record and appended to the in-memory history.
// Safe for concurrent use; the history serializes appends.
type Service struct {
	Gen     domain.TextGenerator
	Clock   application.Clock
	Timeout time.Duration
	// MaxConcurrent caps in-flight section calls within one Analyze run.
	// Zero means all eight at once.
	MaxConcurrent int

	history *domain.History
}

func NewService(gen domain.TextGenerator) *Service {
	return &Service{
		Gen:     gen,
		Clock:   application.SystemClock{},
		Timeout: DefaultSectionTimeout,
		history: domain.NewHistory(),
	}
}

// History returns the append-only analysis log owned by this service.
func (s *Service) History() *domain.History {
	return s.history
}

// Analyze runs the eight fixed sections for an idea and appends the assembled
// record to history. Section calls are independent and run concurrently; a
// failed call becomes an error-marked section, never an error from Analyze.
// The record is appended even if every section carries an error marker.
//
// The returned index is the record's position in history, taken from the
// append itself. Callers must use it as the public analysis identifier;
// reading Len()-1 afterwards can name a concurrently appended record.
func (s *Service) Analyze(ctx context.Context, idea string) (*domain.Record, int, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, 0, domain.ErrEmptyIdea
	}

	results := make(map[domain.SectionName]domain.Section, len(domain.SectionOrder))
	raw := make(map[domain.SectionName]string, len(domain.SectionOrder))

	g, gctx := errgroup.WithContext(ctx)
	if s.MaxConcurrent > 0 {
		g.SetLimit(s.MaxConcurrent)
	}
	type sectionResult struct {
		name    domain.SectionName
		section domain.Section
		raw     string
	}
	out := make(chan sectionResult, len(domain.SectionOrder))
	for _, name := range domain.SectionOrder {
		name := name
		g.Go(func() error {
			text, err := s.generate(gctx, prompt.ForSection(name, idea))
			if err != nil {
				log.Printf("section %s failed: %v", name, err)
				out <- sectionResult{name: name, section: domain.ErrorSection(err, s.Gen.Source())}
				return nil
			}
			out <- sectionResult{
				name:    name,
				section: domain.Section{Analysis: text, Source: s.Gen.Source()},
				raw:     text,
			}
			return nil
		})
	}
	// Workers never return errors; failures are encoded per section.
	_ = g.Wait()
	close(out)
	for r := range out {
		results[r.name] = r.section
		raw[r.name] = r.raw
	}

	hadErrors := false
	for _, name := range domain.SectionOrder {
		if !results[name].OK() {
			hadErrors = true
			break
		}
	}

	rec := &domain.Record{
		ID:                   domain.RecordID(uuid.New().String()),
		Idea:                 idea,
		MarketResearch:       results[domain.SectionMarketResearch],
		CustomerAnalysis:     results[domain.SectionCustomerAnalysis],
		BusinessModel:        results[domain.SectionBusinessModel],
		TechnicalFeasibility: results[domain.SectionTechnicalFeasibility],
		FinancialProjections: results[domain.SectionFinancialProjections],
		GoToMarket:           results[domain.SectionGoToMarket],
		RiskAssessment:       results[domain.SectionRiskAssessment],
		Recommendations:      coerceRecommendations(results[domain.SectionRecommendations], raw[domain.SectionRecommendations]),
		HadErrors:            hadErrors,
		CreatedAt:            s.Clock.Now(),
	}

	idx := s.history.Append(rec)
	return rec, idx, nil
}

// coerceRecommendations turns the raw recommendations completion into a
// non-empty string list. A JSON string array is taken as-is; anything else
// becomes a single-element list. Failures keep the list non-empty too.
func coerceRecommendations(sec domain.Section, raw string) []string {
	if !sec.OK() {
		return []string{fmt.Sprintf("recommendations unavailable: %s", sec.Err)}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil && len(list) > 0 {
		return list
	}
	return []string{raw}
}

// GeneratePitchDeck derives a ten-section pitch outline from a record with one
// further external call. No history side effect; failures are returned.
func (s *Service) GeneratePitchDeck(ctx context.Context, rec *domain.Record) (*domain.PitchDeck, error) {
	p, err := prompt.ForPitchDeck(rec)
	if err != nil {
		return nil, err
	}
	text, err := s.generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate pitch deck: %w", err)
	}
	return &domain.PitchDeck{
		AnalysisID:  rec.ID,
		Content:     text,
		GeneratedAt: s.Clock.Now(),
	}, nil
}

// ValidateBusinessModel reviews a caller-supplied business-model mapping with
// one external call. No history side effect.
func (s *Service) ValidateBusinessModel(ctx context.Context, model map[string]any) (*domain.ValidationResult, error) {
	p, err := prompt.ForValidation(model)
	if err != nil {
		return nil, err
	}
	text, err := s.generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("validate business model: %w", err)
	}
	return &domain.ValidationResult{
		Validation:  text,
		ValidatedAt: s.Clock.Now(),
	}, nil
}

func (s *Service) generate(ctx context.Context, p string) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.Gen.Generate(ctx, p)
}
