package insights

// Financial model defaults when the analysis text yields no figures.
const (
	defaultInitialRevenue = 1_000_000
	defaultMarketSize     = 10_000_000

	cogsRatio    = 0.30
	opexRatio    = 0.40
	taxRate      = 0.25
	minShare     = 0.01
	maxShare     = 0.05
	horizonYears = 5
)

// growthRates are year-over-year revenue growth assumptions for the horizon.
var growthRates = [horizonYears]float64{0.5, 1.5, 1.2, 0.8, 0.6}

// Assumptions are the fixed ratios behind the projection arithmetic.
type Assumptions struct {
	MarketSize        float64 `json:"market_size"`
	TargetMarketShare float64 `json:"target_market_share"`
	InitialRevenue    float64 `json:"initial_revenue"`
	CostOfGoodsSold   float64 `json:"cost_of_goods_sold"`
	OperatingExpenses float64 `json:"operating_expenses"`
	TaxRate           float64 `json:"tax_rate"`
}

// Projections are per-year figures; index i is year i+1.
type Projections struct {
	Years              []int     `json:"years"`
	Revenue            []float64 `json:"revenue"`
	CostOfGoodsSold    []float64 `json:"cost_of_goods_sold"`
	GrossProfit        []float64 `json:"gross_profit"`
	OperatingExpenses  []float64 `json:"operating_expenses"`
	OperatingIncome    []float64 `json:"operating_income"`
	Taxes              []float64 `json:"taxes"`
	NetIncome          []float64 `json:"net_income"`
	CumulativeCashFlow []float64 `json:"cumulative_cash_flow"`
}

// FinancialModel is the five-year fixed-formula projection built from
// whatever figures the text scrape produced.
type FinancialModel struct {
	Assumptions Assumptions `json:"assumptions"`
	Projections Projections `json:"projections"`
}

// GenerateFinancialModel builds the projection from scraped metrics, falling
// back to default revenue and market size when extraction found nothing.
func GenerateFinancialModel(m KeyMetrics) FinancialModel {
	baseRevenue := m.EstimatedRevenue
	if baseRevenue == 0 {
		baseRevenue = defaultInitialRevenue
	}
	marketSize := m.MarketSize
	if marketSize == 0 {
		marketSize = defaultMarketSize
	}

	share := baseRevenue / marketSize
	if share < minShare {
		share = minShare
	}
	if share > maxShare {
		share = maxShare
	}

	model := FinancialModel{
		Assumptions: Assumptions{
			MarketSize:        marketSize,
			TargetMarketShare: share,
			InitialRevenue:    baseRevenue,
			CostOfGoodsSold:   cogsRatio,
			OperatingExpenses: opexRatio,
			TaxRate:           taxRate,
		},
	}

	revenue := baseRevenue
	cumulative := 0.0
	for i, growth := range growthRates {
		if i > 0 {
			revenue *= 1 + growth
		}
		cogs := revenue * cogsRatio
		gross := revenue - cogs
		opex := revenue * opexRatio
		operating := gross - opex
		taxes := 0.0
		if operating > 0 {
			taxes = operating * taxRate
		}
		net := operating - taxes
		cumulative += net

		p := &model.Projections
		p.Years = append(p.Years, i+1)
		p.Revenue = append(p.Revenue, revenue)
		p.CostOfGoodsSold = append(p.CostOfGoodsSold, cogs)
		p.GrossProfit = append(p.GrossProfit, gross)
		p.OperatingExpenses = append(p.OperatingExpenses, opex)
		p.OperatingIncome = append(p.OperatingIncome, operating)
		p.Taxes = append(p.Taxes, taxes)
		p.NetIncome = append(p.NetIncome, net)
		p.CumulativeCashFlow = append(p.CumulativeCashFlow, cumulative)
	}

	return model
}
