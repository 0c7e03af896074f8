package analysis

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordID identifier type
type RecordID string

// SectionName enum for the eight analysis dimensions
type SectionName string

const (
	SectionMarketResearch       SectionName = "market_research"
	SectionCustomerAnalysis     SectionName = "customer_analysis"
	SectionBusinessModel        SectionName = "business_model"
	SectionTechnicalFeasibility SectionName = "technical_feasibility"
	SectionFinancialProjections SectionName = "financial_projections"
	SectionGoToMarket           SectionName = "go_to_market"
	SectionRiskAssessment       SectionName = "risk_assessment"
	SectionRecommendations      SectionName = "recommendations"
)

// SectionOrder is the assembly order of an analysis run. Calls per section are
// independent; only the record layout depends on this order.
var SectionOrder = []SectionName{
	SectionMarketResearch,
	SectionCustomerAnalysis,
	SectionBusinessModel,
	SectionTechnicalFeasibility,
	SectionFinancialProjections,
	SectionGoToMarket,
	SectionRiskAssessment,
	SectionRecommendations,
}

// Section is the outcome of one analysis dimension: either a completion text
// from the text-generation service, or the error that prevented it. Exactly
// one of Analysis/Err is set; Source names the backing service either way.
type Section struct {
	Analysis string
	Err      string
	Source   string
}

// OK reports whether the section holds a successful completion.
func (s Section) OK() bool { return s.Err == "" }

// ErrorSection builds the error-marker value for a failed section call.
func ErrorSection(err error, source string) Section {
	return Section{Err: err.Error(), Source: source}
}

func (s Section) MarshalJSON() ([]byte, error) {
	if !s.OK() {
		return json.Marshal(map[string]string{
			"error":  s.Err,
			"source": s.Source,
		})
	}
	return json.Marshal(map[string]string{
		"analysis": s.Analysis,
		"source":   s.Source,
	})
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("section: %w", err)
	}
	s.Analysis = raw["analysis"]
	s.Err = raw["error"]
	s.Source = raw["source"]
	return nil
}

// Aggregate root: one completed analysis run. Immutable after assembly.
// Every section key is populated even on partial failure; a failed section
// carries an error marker rather than being omitted.
type Record struct {
	ID                   RecordID  `json:"id"`
	Idea                 string    `json:"idea"`
	MarketResearch       Section   `json:"market_research"`
	CustomerAnalysis     Section   `json:"customer_analysis"`
	BusinessModel        Section   `json:"business_model"`
	TechnicalFeasibility Section   `json:"technical_feasibility"`
	FinancialProjections Section   `json:"financial_projections"`
	GoToMarket           Section   `json:"go_to_market"`
	RiskAssessment       Section   `json:"risk_assessment"`
	Recommendations      []string  `json:"recommendations"`
	HadErrors            bool      `json:"had_errors"`
	CreatedAt            time.Time `json:"created_at"`
}

// Sections returns the seven named sections keyed by name, in SectionOrder
// (recommendations excluded; it is a string list, not a Section).
func (r *Record) Sections() map[SectionName]Section {
	return map[SectionName]Section{
		SectionMarketResearch:       r.MarketResearch,
		SectionCustomerAnalysis:     r.CustomerAnalysis,
		SectionBusinessModel:        r.BusinessModel,
		SectionTechnicalFeasibility: r.TechnicalFeasibility,
		SectionFinancialProjections: r.FinancialProjections,
		SectionGoToMarket:           r.GoToMarket,
		SectionRiskAssessment:       r.RiskAssessment,
	}
}

// Section looks up one of the seven named sections.
func (r *Record) Section(name SectionName) (Section, bool) {
	s, ok := r.Sections()[name]
	return s, ok
}

// PitchDeck is a transient value derived from a record; never stored in history.
type PitchDeck struct {
	AnalysisID  RecordID  `json:"analysis_id"`
	Content     string    `json:"pitch_deck"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ValidationResult is a transient value derived from a caller-supplied
// business-model mapping; never stored in history.
type ValidationResult struct {
	Validation  string    `json:"validation"`
	ValidatedAt time.Time `json:"validated_at"`
}
