package prompt

import (
	"strings"
	"testing"
	"time"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

func TestForSectionEmbedsIdeaAndTask(t *testing.T) {
	idea := "A marketplace for refurbished lab equipment"
	for _, name := range domain.SectionOrder {
		p := ForSection(name, idea)
		if !strings.Contains(p, "Startup Idea: "+idea) {
			t.Errorf("ForSection(%s) does not embed the idea verbatim", name)
		}
		if task := SectionTask(name); task == "" || !strings.Contains(p, task) {
			t.Errorf("ForSection(%s) does not embed its task description", name)
		}
	}
}

func TestSectionTasksDistinct(t *testing.T) {
	seen := map[string]domain.SectionName{}
	for _, name := range domain.SectionOrder {
		task := SectionTask(name)
		if prev, ok := seen[task]; ok {
			t.Errorf("sections %s and %s share task %q", prev, name, task)
		}
		seen[task] = name
	}
}

func TestForPitchDeckOutline(t *testing.T) {
	rec := &domain.Record{
		ID:              "rec-1",
		Idea:            "coffee box",
		MarketResearch:  domain.Section{Analysis: "big market", Source: "stub"},
		Recommendations: []string{"start small"},
		CreatedAt:       time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
	}

	p, err := ForPitchDeck(rec)
	if err != nil {
		t.Fatalf("ForPitchDeck error: %v", err)
	}

	outline := []string{
		"1. Problem Statement",
		"2. Solution Overview",
		"3. Market Opportunity",
		"4. Business Model",
		"5. Competitive Advantage",
		"6. Financial Projections",
		"7. Go-to-Market Strategy",
		"8. Team & Execution Plan",
		"9. Funding Requirements",
		"10. Call to Action",
	}
	for _, item := range outline {
		if !strings.Contains(p, item) {
			t.Errorf("pitch prompt missing outline item %q", item)
		}
	}
	if !strings.Contains(p, "big market") {
		t.Errorf("pitch prompt does not embed the serialized record")
	}
}

func TestForValidationEmbedsModel(t *testing.T) {
	p, err := ForValidation(map[string]any{"pricing": "tiered subscriptions"})
	if err != nil {
		t.Fatalf("ForValidation error: %v", err)
	}
	for _, item := range []string{
		"Strengths and weaknesses",
		"Potential improvements",
		"Risk factors",
		"Scalability assessment",
		"Revenue optimization suggestions",
		"tiered subscriptions",
	} {
		if !strings.Contains(p, item) {
			t.Errorf("validation prompt missing %q", item)
		}
	}
}
