package analysis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

func analyzedRecord(t *testing.T) (*Service, *domain.Record) {
	t.Helper()
	svc := newTestService(newStubGenerator())
	rec, _, err := svc.Analyze(context.Background(), testIdea)
	require.NoError(t, err)
	return svc, rec
}

func TestExportJSONRoundTrip(t *testing.T) {
	svc, rec := analyzedRecord(t)

	content, err := svc.Export(rec, "json")
	require.NoError(t, err)

	var got domain.Record
	require.NoError(t, json.Unmarshal([]byte(content), &got))

	if diff := cmp.Diff(*rec, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportMarkdown(t *testing.T) {
	svc, rec := analyzedRecord(t)
	rec.Recommendations = []string{"validate demand", "build an mvp"}

	content, err := svc.Export(rec, "markdown")
	require.NoError(t, err)

	headings := []string{
		"# Startup Analysis Report",
		"## Market Research",
		"## Customer Analysis",
		"## Business Model",
		"## Technical Feasibility",
		"## Financial Projections",
		"## Go-to-Market Strategy",
		"## Risk Assessment",
		"## Recommendations",
	}
	for _, h := range headings {
		assert.Contains(t, content, h+"\n")
	}

	assert.Contains(t, content, "- validate demand\n")
	assert.Contains(t, content, "- build an mvp\n")
	assert.Equal(t, 2, strings.Count(content, "\n- "), "one bullet per recommendation")
}

func TestExportMarkdownErrorSection(t *testing.T) {
	gen := newStubGenerator()
	gen.failFor[domain.SectionRiskAssessment] = true
	svc := newTestService(gen)
	rec, _, err := svc.Analyze(context.Background(), testIdea)
	require.NoError(t, err)

	content, err := svc.Export(rec, "markdown")
	require.NoError(t, err)
	assert.Contains(t, content, "## Risk Assessment")
	assert.Contains(t, content, `"error": "risk_assessment call failed"`)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc, rec := analyzedRecord(t)

	for _, format := range []string{"xml", "pdf", ""} {
		content, err := svc.Export(rec, format)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, "format %q", format)
		assert.Empty(t, content)
	}
}

func TestExportCaseInsensitiveFormat(t *testing.T) {
	svc, rec := analyzedRecord(t)

	content, err := svc.Export(rec, "JSON")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(content)))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{" Markdown ", FormatMarkdown, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
