package insights

import (
	"fmt"
	"strings"
	"time"
)

// SWOT is a keyword-driven strengths/weaknesses/opportunities/threats sketch.
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

var strengthKeywords = []string{
	"unique", "innovative", "competitive advantage", "strong team",
	"proven technology", "market demand", "scalable", "profitable",
}

var weaknessKeywords = []string{
	"limited", "small", "unproven", "risky", "expensive",
	"complex", "difficult", "challenging", "uncertain",
}

var opportunityKeywords = []string{
	"growing market", "increasing demand", "market expansion",
	"new technology", "partnership", "acquisition", "funding",
}

var threatKeywords = []string{
	"competition", "market saturation", "regulation", "economic",
	"technology change", "customer churn", "funding risk",
}

func collect(text string, keywords []string, format string) []string {
	var out []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			out = append(out, fmt.Sprintf(format, kw))
		}
	}
	return out
}

// GenerateSWOT scans analysis text for SWOT signals. Categories with no match
// fall back to generic defaults so the matrix is never empty.
func GenerateSWOT(text string) SWOT {
	lower := strings.ToLower(text)
	s := SWOT{
		Strengths:     collect(lower, strengthKeywords, "Strong %s"),
		Weaknesses:    collect(lower, weaknessKeywords, "Potential %s challenges"),
		Opportunities: collect(lower, opportunityKeywords, "Market %s"),
		Threats:       collect(lower, threatKeywords, "Potential %s threats"),
	}
	if len(s.Strengths) == 0 {
		s.Strengths = []string{"Innovative solution", "Market opportunity", "Scalable business model"}
	}
	if len(s.Weaknesses) == 0 {
		s.Weaknesses = []string{"New market entrant", "Limited resources", "Unproven concept"}
	}
	if len(s.Opportunities) == 0 {
		s.Opportunities = []string{"Market growth", "Technology advancement", "Partnership potential"}
	}
	if len(s.Threats) == 0 {
		s.Threats = []string{"Competition", "Market changes", "Economic factors"}
	}
	return s
}

// Competitor is one row in the competitor matrix.
type Competitor struct {
	Name        string   `json:"name"`
	MarketShare int      `json:"market_share"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	ThreatLevel string   `json:"threat_level"`
}

// CompetitorAnalysis is a canned competitor landscape template. Share figures
// are placeholders until real competitor extraction exists.
type CompetitorAnalysis struct {
	Competitors            []Competitor `json:"competitors"`
	TotalMarketShare       int          `json:"total_market_share_covered"`
	OpportunityMarketShare int          `json:"opportunity_market_share"`
	AnalysisDate           time.Time    `json:"analysis_date"`
}

func CreateCompetitorAnalysis(now time.Time) CompetitorAnalysis {
	competitors := []Competitor{
		{
			Name:        "Competitor A",
			MarketShare: 25,
			Strengths:   []string{"Strong brand", "Large user base", "Deep pockets"},
			Weaknesses:  []string{"Slow innovation", "Poor UX", "High costs"},
			ThreatLevel: "High",
		},
		{
			Name:        "Competitor B",
			MarketShare: 15,
			Strengths:   []string{"Innovative features", "Agile development"},
			Weaknesses:  []string{"Small team", "Limited funding"},
			ThreatLevel: "Medium",
		},
		{
			Name:        "Competitor C",
			MarketShare: 10,
			Strengths:   []string{"Niche focus", "Customer loyalty"},
			Weaknesses:  []string{"Limited scale", "Geographic constraints"},
			ThreatLevel: "Low",
		},
	}
	total := 0
	for _, c := range competitors {
		total += c.MarketShare
	}
	return CompetitorAnalysis{
		Competitors:            competitors,
		TotalMarketShare:       total,
		OpportunityMarketShare: 100 - total,
		AnalysisDate:           now,
	}
}

// ActionItem is one entry of the phased action plan.
type ActionItem struct {
	Action          string   `json:"action"`
	Timeline        string   `json:"timeline"`
	Priority        string   `json:"priority"`
	ResourcesNeeded []string `json:"resources_needed,omitempty"`
	Dependencies    []string `json:"dependencies,omitempty"`
	SuccessMetrics  []string `json:"success_metrics"`
}

// ActionPlan groups next steps by horizon.
type ActionPlan struct {
	ImmediateActions []ActionItem `json:"immediate_actions"`
	ShortTermGoals   []ActionItem `json:"short_term_goals"`
	MediumTermGoals  []ActionItem `json:"medium_term_goals"`
	LongTermGoals    []ActionItem `json:"long_term_goals"`
}

// CreateActionPlan returns the canned phased plan the report embeds.
func CreateActionPlan() ActionPlan {
	return ActionPlan{
		ImmediateActions: []ActionItem{
			{
				Action:          "Conduct detailed market research",
				Timeline:        "1-2 months",
				Priority:        "High",
				ResourcesNeeded: []string{"Market research tools", "Industry contacts"},
				SuccessMetrics:  []string{"Market size validation", "Customer interviews completed"},
			},
			{
				Action:          "Develop MVP prototype",
				Timeline:        "2-3 months",
				Priority:        "High",
				ResourcesNeeded: []string{"Development team", "Design resources"},
				SuccessMetrics:  []string{"Working prototype", "User feedback collected"},
			},
			{
				Action:          "Create financial model",
				Timeline:        "1 month",
				Priority:        "Medium",
				ResourcesNeeded: []string{"Financial expertise", "Market data"},
				SuccessMetrics:  []string{"5-year projections", "Break-even analysis"},
			},
		},
		ShortTermGoals: []ActionItem{
			{
				Action:         "Launch beta version",
				Timeline:       "3-6 months",
				Priority:       "High",
				Dependencies:   []string{"MVP completed", "Initial funding secured"},
				SuccessMetrics: []string{"Beta users acquired", "Product-market fit validation"},
			},
			{
				Action:         "Secure initial funding",
				Timeline:       "3-4 months",
				Priority:       "High",
				Dependencies:   []string{"Financial model", "Pitch deck"},
				SuccessMetrics: []string{"Funding secured", "Investor commitments"},
			},
		},
		MediumTermGoals: []ActionItem{
			{
				Action:         "Achieve product-market fit",
				Timeline:       "6-12 months",
				Priority:       "High",
				Dependencies:   []string{"Beta launch", "User feedback"},
				SuccessMetrics: []string{"User retention rate", "Customer satisfaction"},
			},
			{
				Action:         "Scale operations",
				Timeline:       "12-18 months",
				Priority:       "Medium",
				Dependencies:   []string{"Product-market fit", "Additional funding"},
				SuccessMetrics: []string{"Revenue growth", "Team expansion"},
			},
		},
		LongTermGoals: []ActionItem{
			{
				Action:         "Market leadership",
				Timeline:       "18-36 months",
				Priority:       "Medium",
				Dependencies:   []string{"Scaled operations", "Market expansion"},
				SuccessMetrics: []string{"Market share", "Brand recognition"},
			},
			{
				Action:         "Exit strategy",
				Timeline:       "36+ months",
				Priority:       "Low",
				Dependencies:   []string{"Market leadership", "Financial performance"},
				SuccessMetrics: []string{"Valuation", "Exit options"},
			},
		},
	}
}
