package refdata

// Assumptions are the process-wide default financial assumptions.
type Assumptions struct {
	TaxRate          float64 `json:"tax_rate"`          // corporate tax
	RiskFreeRate     float64 `json:"risk_free_rate"`    // 10y proxy
	MarketPremium    float64 `json:"market_premium"`    // equity risk premium
	TerminalGrowth   float64 `json:"terminal_growth"`   // perpetuity growth
	DepreciationRate float64 `json:"depreciation_rate"` // % of revenue, documented but unused by the simplified FCF
	CapexRate        float64 `json:"capex_rate"`        // % of revenue, documented but unused by the simplified FCF
	ProjectionYears  int     `json:"projection_years"`
}

// Defaults returns the global assumption set. Returned by value so callers
// cannot mutate the shared table.
func Defaults() Assumptions {
	return defaults
}

var defaults = Assumptions{
	TaxRate:          0.25,
	RiskFreeRate:     0.05,
	MarketPremium:    0.06,
	TerminalGrowth:   0.02,
	DepreciationRate: 0.05,
	CapexRate:        0.03,
	ProjectionYears:  5,
}
