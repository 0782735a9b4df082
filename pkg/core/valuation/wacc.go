package valuation

import "sme_valuation/pkg/core/refdata"

// WACC bounds and defaults. The estimate is always clamped into
// [MinWACC, MaxWACC]; DefaultWACC applies when the capital structure is
// degenerate (zero or negative total value).
const (
	MinWACC     = 0.08
	MaxWACC     = 0.25
	DefaultWACC = 0.12

	baseCostOfDebt = 0.08
)

// WACCResult holds the estimated rate and its components.
type WACCResult struct {
	Beta               float64 `json:"beta"`
	CostOfEquity       float64 `json:"cost_of_equity"`
	CostOfDebt         float64 `json:"cost_of_debt"`
	AfterTaxCostOfDebt float64 `json:"after_tax_cost_of_debt"`
	EquityWeight       float64 `json:"equity_weight"`
	DebtWeight         float64 `json:"debt_weight"`
	WACC               float64 `json:"wacc"`
}

// EstimateWACC derives a discount rate from the book capital structure and
// the sector risk premium.
//
// The beta is approximated from the sector risk premium rather than derived
// from market data (SMEs have no traded comparables at this scale), and the
// cost of equity is CAPM plus the sector premium on top.
func EstimateWACC(totalAssets, totalLiabilities float64, sector refdata.Sector) WACCResult {
	asm := refdata.Defaults()

	equity := totalAssets - totalLiabilities
	debt := totalLiabilities
	totalValue := equity + debt

	if totalValue <= 0 {
		return WACCResult{WACC: DefaultWACC}
	}

	riskPremium := refdata.SectorRiskPremium(sector)

	beta := 1.0 + riskPremium*10
	costOfEquity := asm.RiskFreeRate + beta*asm.MarketPremium + riskPremium

	costOfDebt := baseCostOfDebt + riskPremium
	afterTaxCostOfDebt := costOfDebt * (1 - asm.TaxRate)

	equityWeight := equity / totalValue
	debtWeight := debt / totalValue

	wacc := equityWeight*costOfEquity + debtWeight*afterTaxCostOfDebt

	return WACCResult{
		Beta:               beta,
		CostOfEquity:       costOfEquity,
		CostOfDebt:         costOfDebt,
		AfterTaxCostOfDebt: afterTaxCostOfDebt,
		EquityWeight:       equityWeight,
		DebtWeight:         debtWeight,
		WACC:               clampWACC(wacc),
	}
}

func clampWACC(w float64) float64 {
	if w < MinWACC {
		return MinWACC
	}
	if w > MaxWACC {
		return MaxWACC
	}
	return w
}
