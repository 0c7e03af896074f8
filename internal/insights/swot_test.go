package insights

import "testing"

func TestGenerateSWOTFromKeywords(t *testing.T) {
	text := "An innovative and scalable product facing competition in a growing market, though the concept is unproven."
	s := GenerateSWOT(text)

	if !hasItem(s.Strengths, "Strong innovative") {
		t.Errorf("Strengths = %v, missing innovative signal", s.Strengths)
	}
	if !hasItem(s.Strengths, "Strong scalable") {
		t.Errorf("Strengths = %v, missing scalable signal", s.Strengths)
	}
	if !hasItem(s.Weaknesses, "Potential unproven challenges") {
		t.Errorf("Weaknesses = %v, missing unproven signal", s.Weaknesses)
	}
	if !hasItem(s.Opportunities, "Market growing market") {
		t.Errorf("Opportunities = %v, missing growing market signal", s.Opportunities)
	}
	if !hasItem(s.Threats, "Potential competition threats") {
		t.Errorf("Threats = %v, missing competition signal", s.Threats)
	}
}

func TestGenerateSWOTDefaults(t *testing.T) {
	s := GenerateSWOT("plain text with no signals at all")

	for name, items := range map[string][]string{
		"strengths":     s.Strengths,
		"weaknesses":    s.Weaknesses,
		"opportunities": s.Opportunities,
		"threats":       s.Threats,
	} {
		if len(items) == 0 {
			t.Errorf("%s should fall back to defaults, got empty", name)
		}
	}
	if !hasItem(s.Strengths, "Innovative solution") {
		t.Errorf("Strengths defaults = %v", s.Strengths)
	}
}

func TestGenerateSWOTCaseInsensitive(t *testing.T) {
	s := GenerateSWOT("SCALABLE architecture with INCREASING DEMAND")
	if !hasItem(s.Strengths, "Strong scalable") {
		t.Errorf("Strengths = %v, keyword scan should be case-insensitive", s.Strengths)
	}
	if !hasItem(s.Opportunities, "Market increasing demand") {
		t.Errorf("Opportunities = %v, keyword scan should be case-insensitive", s.Opportunities)
	}
}

func TestCreateActionPlanPhases(t *testing.T) {
	plan := CreateActionPlan()

	phases := map[string][]ActionItem{
		"immediate":   plan.ImmediateActions,
		"short term":  plan.ShortTermGoals,
		"medium term": plan.MediumTermGoals,
		"long term":   plan.LongTermGoals,
	}
	for name, items := range phases {
		if len(items) == 0 {
			t.Errorf("%s phase is empty", name)
		}
		for _, item := range items {
			if item.Action == "" || item.Timeline == "" || item.Priority == "" {
				t.Errorf("%s phase has an incomplete item: %+v", name, item)
			}
			if len(item.SuccessMetrics) == 0 {
				t.Errorf("%s action %q has no success metrics", name, item.Action)
			}
		}
	}
}

func hasItem(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
