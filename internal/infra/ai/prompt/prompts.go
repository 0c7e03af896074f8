package prompt

import (
	"encoding/json"
	"fmt"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
)

// sectionTasks maps each analysis dimension to its fixed task description.
// The task text is embedded verbatim into the section instruction.
var sectionTasks = map[domain.SectionName]string{
	domain.SectionMarketResearch:       "Analyze market size, trends, and competitive landscape",
	domain.SectionCustomerAnalysis:     "Define target customers and their pain points",
	domain.SectionBusinessModel:        "Design comprehensive business model and revenue streams",
	domain.SectionTechnicalFeasibility: "Evaluate technical requirements and feasibility",
	domain.SectionFinancialProjections: "Create financial projections and funding requirements",
	domain.SectionGoToMarket:           "Develop go-to-market strategy and launch plan",
	domain.SectionRiskAssessment:       "Identify potential risks and mitigation strategies",
	domain.SectionRecommendations:      "Provide actionable recommendations and next steps",
}

// SectionTask returns the fixed task description for a section.
func SectionTask(name domain.SectionName) string {
	return sectionTasks[name]
}

// ForSection builds the instruction for one analysis dimension. The caller's
// idea is embedded verbatim.
func ForSection(name domain.SectionName, idea string) string {
	return fmt.Sprintf(`As an expert startup analyst, provide detailed analysis for: %s

Startup Idea: %s

Please provide your analysis in a structured format with clear sections and actionable insights.`,
		sectionTasks[name], idea)
}

// ForPitchDeck builds the ten-section outline request around a fully
// serialized analysis record.
func ForPitchDeck(record *domain.Record) (string, error) {
	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize record for pitch deck: %w", err)
	}
	return fmt.Sprintf(`Based on the following startup analysis, create a compelling pitch deck structure:

%s

Include:
1. Problem Statement
2. Solution Overview
3. Market Opportunity
4. Business Model
5. Competitive Advantage
6. Financial Projections
7. Go-to-Market Strategy
8. Team & Execution Plan
9. Funding Requirements
10. Call to Action`, b), nil
}

// ForValidation builds the business-model validation instruction.
func ForValidation(model map[string]any) (string, error) {
	b, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize business model: %w", err)
	}
	return fmt.Sprintf(`Validate and improve this business model:

%s

Provide:
1. Strengths and weaknesses
2. Potential improvements
3. Risk factors
4. Scalability assessment
5. Revenue optimization suggestions`, b), nil
}
