// Package insights derives structured figures from the free-text analysis a
// record holds: regex-scraped key metrics, SWOT, a fixed-formula financial
// model, and chart descriptions. Everything here is a pure transform over an
// already-built record.
package insights

import (
	"regexp"
	"strconv"
	"strings"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

// KeyMetrics holds figures scraped from analysis text. Zero values mean the
// pattern did not match; nothing here is computed, only extracted.
type KeyMetrics struct {
	MarketSize       float64 `json:"market_size,omitempty"`
	CompetitionLevel string  `json:"competition_level,omitempty"`
	FeasibilityScore int     `json:"feasibility_score,omitempty"`
	RiskLevel        string  `json:"risk_level,omitempty"`
	EstimatedRevenue float64 `json:"estimated_revenue,omitempty"`
	// TimeToMarketMonths is normalized to months regardless of the unit in the text.
	TimeToMarketMonths int `json:"time_to_market_months,omitempty"`
}

var whitespaceRe = regexp.MustCompile(`\s+`)
var specialsRe = regexp.MustCompile(`[^\w\s\.\,\!\?\-\:\;\(\)]`)

// CleanText collapses whitespace and strips characters outside basic punctuation.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	return specialsRe.ReplaceAllString(text, "")
}

var marketPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)market size[:\s]*\$?([\d,]+\.?\d*)\s*(billion|million|thousand|trillion)`),
	regexp.MustCompile(`(?i)\$?([\d,]+\.?\d*)\s*(billion|million|thousand|trillion)\s*market`),
	regexp.MustCompile(`(?i)market.*?\$?([\d,]+\.?\d*)\s*(billion|million|thousand|trillion)`),
}

var revenuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)revenue.*?\$?([\d,]+\.?\d*)\s*(billion|million|thousand)`),
	regexp.MustCompile(`(?i)\$?([\d,]+\.?\d*)\s*(billion|million|thousand).*?revenue`),
	regexp.MustCompile(`(?i)projected.*?\$?([\d,]+\.?\d*)\s*(billion|million|thousand)`),
}

var feasibilityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)feasibility.*?(\d{1,2})%`),
	regexp.MustCompile(`(?i)(\d{1,2})%.*?feasibility`),
	regexp.MustCompile(`(?i)feasibility.*?(\d{1,2})\s*out\s*of\s*100`),
}

var timeToMarketPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(months?|years?)\s*to\s*market`),
	regexp.MustCompile(`(?i)time\s*to\s*market.*?(\d+)\s*(months?|years?)`),
	regexp.MustCompile(`(?i)launch.*?(\d+)\s*(months?|years?)`),
}

var competitionKeywords = map[string][]string{
	"low":    {"low competition", "few competitors", "niche market", "blue ocean"},
	"medium": {"moderate competition", "some competitors", "competitive market"},
	"high":   {"high competition", "many competitors", "saturated market", "red ocean"},
}

var riskKeywords = map[string][]string{
	"low":    {"low risk", "minimal risk", "safe investment"},
	"medium": {"medium risk", "moderate risk", "balanced risk"},
	"high":   {"high risk", "significant risk", "risky venture"},
}

// levelOrder keeps keyword lookups deterministic.
var levelOrder = []string{"low", "medium", "high"}

func unitMultiplier(unit string) float64 {
	switch strings.ToLower(unit) {
	case "trillion":
		return 1e12
	case "billion":
		return 1e9
	case "million":
		return 1e6
	case "thousand":
		return 1e3
	}
	return 1
}

func firstAmount(text string, patterns []*regexp.Regexp) float64 {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return v * unitMultiplier(m[2])
	}
	return 0
}

func keywordLevel(text string, keywords map[string][]string) string {
	lower := strings.ToLower(text)
	for _, level := range levelOrder {
		for _, kw := range keywords[level] {
			if strings.Contains(lower, kw) {
				return level
			}
		}
	}
	return ""
}

// ExtractKeyMetrics scrapes headline figures out of free analysis text.
func ExtractKeyMetrics(text string) KeyMetrics {
	m := KeyMetrics{
		MarketSize:       firstAmount(text, marketPatterns),
		EstimatedRevenue: firstAmount(text, revenuePatterns),
		CompetitionLevel: keywordLevel(text, competitionKeywords),
		RiskLevel:        keywordLevel(text, riskKeywords),
	}

	for _, re := range feasibilityPatterns {
		if g := re.FindStringSubmatch(text); g != nil {
			if v, err := strconv.Atoi(g[1]); err == nil {
				m.FeasibilityScore = v
				break
			}
		}
	}

	for _, re := range timeToMarketPatterns {
		g := re.FindStringSubmatch(text)
		if g == nil {
			continue
		}
		v, err := strconv.Atoi(g[1])
		if err != nil {
			continue
		}
		if strings.HasPrefix(strings.ToLower(g[2]), "year") {
			v *= 12
		}
		m.TimeToMarketMonths = v
		break
	}

	return m
}

// RecordText flattens every successful section of a record into one string
// for keyword and pattern scans.
func RecordText(rec *domain.Record) string {
	var b strings.Builder
	for _, name := range domain.SectionOrder {
		if sec, ok := rec.Section(name); ok && sec.OK() {
			b.WriteString(sec.Analysis)
			b.WriteString("\n")
		}
	}
	for _, r := range rec.Recommendations {
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String()
}

// FromRecord scrapes key metrics from all sections of a record.
func FromRecord(rec *domain.Record) KeyMetrics {
	return ExtractKeyMetrics(RecordText(rec))
}
