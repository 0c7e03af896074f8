package analysis

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSectionMarshalSuccess(t *testing.T) {
	sec := Section{Analysis: "large and growing market", Source: "openai"}

	b, err := json.Marshal(sec)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got["analysis"] != "large and growing market" || got["source"] != "openai" {
		t.Errorf("marshalled section = %v", got)
	}
	if _, ok := got["error"]; ok {
		t.Errorf("success section must not carry an error key: %v", got)
	}
}

func TestSectionMarshalError(t *testing.T) {
	sec := ErrorSection(errors.New("quota exceeded"), "openai")
	if sec.OK() {
		t.Fatal("error section reports OK")
	}

	b, err := json.Marshal(sec)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got["error"] != "quota exceeded" || got["source"] != "openai" {
		t.Errorf("marshalled section = %v", got)
	}
	if _, ok := got["analysis"]; ok {
		t.Errorf("error section must not carry an analysis key: %v", got)
	}
}

func TestSectionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sec  Section
	}{
		{"success", Section{Analysis: "niche market, few competitors", Source: "openai"}},
		{"failure", Section{Err: "timeout", Source: "openai"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.sec)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			var got Section
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if got != tt.sec {
				t.Errorf("round trip = %+v, want %+v", got, tt.sec)
			}
		})
	}
}

func TestRecordSectionsComplete(t *testing.T) {
	rec := &Record{}
	sections := rec.Sections()
	for _, name := range SectionOrder {
		if name == SectionRecommendations {
			continue
		}
		if _, ok := sections[name]; !ok {
			t.Errorf("Sections() missing %q", name)
		}
	}
	if len(sections) != len(SectionOrder)-1 {
		t.Errorf("Sections() has %d entries, want %d", len(sections), len(SectionOrder)-1)
	}
}
