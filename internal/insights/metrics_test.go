package insights

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

func TestExtractKeyMetrics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want KeyMetrics
	}{
		{
			name: "market size in billions",
			text: "The market size: $2.5 billion and growing.",
			want: KeyMetrics{MarketSize: 2.5e9},
		},
		{
			name: "revenue with commas",
			text: "Projected revenue of $1,200 thousand in year one.",
			want: KeyMetrics{EstimatedRevenue: 1.2e6},
		},
		{
			name: "feasibility percentage",
			text: "Technical feasibility is rated at 85% given current tooling.",
			want: KeyMetrics{FeasibilityScore: 85},
		},
		{
			name: "time to market in years",
			text: "Expect 2 years to market for the full platform.",
			want: KeyMetrics{TimeToMarketMonths: 24},
		},
		{
			name: "time to market in months",
			text: "Roughly 6 months to market for an MVP.",
			want: KeyMetrics{TimeToMarketMonths: 6},
		},
		{
			name: "competition and risk keywords",
			text: "A saturated market with many competitors makes this a high risk play.",
			want: KeyMetrics{CompetitionLevel: "high", RiskLevel: "high"},
		},
		{
			name: "low competition wins over later high mention",
			text: "Few competitors today, though high competition may come later.",
			want: KeyMetrics{CompetitionLevel: "low"},
		},
		{
			name: "no signals",
			text: "Nothing quantitative in this paragraph.",
			want: KeyMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeyMetrics(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractKeyMetrics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  hello   world  ", "hello world"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"keep: punctuation, (ok)! strip @#$%", "keep: punctuation, (ok)! strip "},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecordTextSkipsErrorSections(t *testing.T) {
	rec := &domain.Record{
		Idea:            "coffee box",
		MarketResearch:  domain.Section{Analysis: "a niche market", Source: "stub"},
		RiskAssessment:  domain.Section{Err: "call failed", Source: "stub"},
		Recommendations: []string{"start small"},
	}

	text := RecordText(rec)
	for _, want := range []string{"a niche market", "start small"} {
		if !strings.Contains(text, want) {
			t.Errorf("RecordText missing %q", want)
		}
	}
	if strings.Contains(text, "call failed") {
		t.Errorf("RecordText should not include error markers")
	}
}

func TestFromRecord(t *testing.T) {
	rec := &domain.Record{
		MarketResearch: domain.Section{Analysis: "market size: $4 billion", Source: "stub"},
		RiskAssessment: domain.Section{Analysis: "this is a low risk venture", Source: "stub"},
	}
	got := FromRecord(rec)
	if got.MarketSize != 4e9 {
		t.Errorf("MarketSize = %v, want 4e9", got.MarketSize)
	}
	if got.RiskLevel != "low" {
		t.Errorf("RiskLevel = %q, want low", got.RiskLevel)
	}
}
