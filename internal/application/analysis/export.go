package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

// Format enum for export
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat normalizes a caller-supplied format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: json, markdown)", domain.ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type for uploaded reports.
func (f Format) ContentType() string {
	if f == FormatMarkdown {
		return "text/markdown"
	}
	return "application/json"
}

// Extension returns the report file extension including the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".json"
}

// Export serializes a record. Pure transform: no I/O, no history effect; the
// only failure mode is an unsupported format value.
func (s *Service) Export(rec *domain.Record, format string) (string, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return "", fmt.Errorf("export analysis: %w", err)
		}
		return string(b), nil
	default:
		return toMarkdown(rec)
	}
}

// sectionHeadings pairs each section with its report heading, in layout order.
var sectionHeadings = []struct {
	Name    domain.SectionName
	Heading string
}{
	{domain.SectionMarketResearch, "Market Research"},
	{domain.SectionCustomerAnalysis, "Customer Analysis"},
	{domain.SectionBusinessModel, "Business Model"},
	{domain.SectionTechnicalFeasibility, "Technical Feasibility"},
	{domain.SectionFinancialProjections, "Financial Projections"},
	{domain.SectionGoToMarket, "Go-to-Market Strategy"},
	{domain.SectionRiskAssessment, "Risk Assessment"},
}

func toMarkdown(rec *domain.Record) (string, error) {
	var b strings.Builder
	b.WriteString("# Startup Analysis Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))

	sections := rec.Sections()
	for _, sh := range sectionHeadings {
		fmt.Fprintf(&b, "\n## %s\n", sh.Heading)
		body, err := json.MarshalIndent(sections[sh.Name], "", "  ")
		if err != nil {
			return "", fmt.Errorf("export analysis: %w", err)
		}
		b.Write(body)
		b.WriteString("\n")
	}

	b.WriteString("\n## Recommendations\n")
	for _, rec := range rec.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	return b.String(), nil
}
