package insights

// Chart descriptions for presentation layers. These are plain data, not
// rendered output; a UI turns them into actual charts.

// PieChart describes a share breakdown.
type PieChart struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// LineChart describes a single series over time.
type LineChart struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// ScatterChart describes labelled points, used for the risk matrix.
type ScatterChart struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Labels []string  `json:"labels"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// MarketCharts bundles the three standard report visualizations.
type MarketCharts struct {
	MarketLandscape   PieChart     `json:"market_landscape"`
	RevenueProjection LineChart    `json:"revenue_projection"`
	RiskMatrix        ScatterChart `json:"risk_matrix"`
}

// CreateMarketCharts builds the report chart set. The landscape and risk
// figures are template placeholders; the revenue series comes from the
// financial model.
func CreateMarketCharts(model FinancialModel) MarketCharts {
	years := make([]float64, len(model.Projections.Years))
	revenue := make([]float64, len(model.Projections.Revenue))
	for i := range model.Projections.Years {
		years[i] = float64(model.Projections.Years[i])
		revenue[i] = model.Projections.Revenue[i] / 1e6
	}
	return MarketCharts{
		MarketLandscape: PieChart{
			Title:  "Market Landscape Distribution",
			Labels: []string{"Direct Competitors", "Indirect Competitors", "Potential Partners", "New Entrants"},
			Values: []float64{30, 25, 35, 10},
		},
		RevenueProjection: LineChart{
			Title:  "5-Year Revenue Projection",
			XLabel: "Year",
			YLabel: "Revenue ($M)",
			X:      years,
			Y:      revenue,
		},
		RiskMatrix: ScatterChart{
			Title:  "Risk Assessment Matrix",
			XLabel: "Probability",
			YLabel: "Impact",
			Labels: []string{"Market Risk", "Technical Risk", "Financial Risk", "Competitive Risk"},
			X:      []float64{0.3, 0.2, 0.4, 0.5},
			Y:      []float64{0.7, 0.6, 0.8, 0.6},
		},
	}
}

// Report is the full insights bundle served for a record.
type Report struct {
	Metrics        KeyMetrics         `json:"metrics"`
	SWOT           SWOT               `json:"swot"`
	FinancialModel FinancialModel     `json:"financial_model"`
	Competitors    CompetitorAnalysis `json:"competitor_analysis"`
	ActionPlan     ActionPlan         `json:"action_plan"`
	Charts         MarketCharts       `json:"charts"`
}
