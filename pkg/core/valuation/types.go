// Package valuation implements the core engine: three valuation methods
// (comparable multiples, simplified DCF, adjusted asset value), the WACC
// estimator and the aggregator that blends them into a single result.
package valuation

import (
	"time"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/core/score"
)

// Blend weights for the three methods. Fixed; they always sum to 1.
const (
	WeightMultiples = 0.4
	WeightDCF       = 0.4
	WeightAsset     = 0.2
)

// MethodResult is the output of one valuation method. Min/Max are the
// method's own bounds where the method defines them; Details holds the
// method-specific breakdown (MultiplesDetails, DCFDetails or AssetDetails).
// A degenerate result has zero value, no bounds and an empty details map.
type MethodResult struct {
	Value   float64     `json:"value"`
	Min     *float64    `json:"min,omitempty"`
	Max     *float64    `json:"max,omitempty"`
	Details interface{} `json:"details"`
}

// MultiplesDetails is the comparable-multiples breakdown.
type MultiplesDetails struct {
	EVEbitdaMultiple  float64 `json:"ev_ebitda_multiple"`
	EVRevenueMultiple float64 `json:"ev_revenue_multiple"`
	EVFromEbitda      float64 `json:"ev_from_ebitda"`
	EVFromRevenue     float64 `json:"ev_from_revenue"`
}

// ProjectedYear is one year of the DCF projection.
type ProjectedYear struct {
	Year           int     `json:"year"`
	EBITDA         float64 `json:"ebitda"`
	FCF            float64 `json:"fcf"`
	DiscountFactor float64 `json:"discount_factor"`
	PresentValue   float64 `json:"present_value"`
}

// DCFDetails is the DCF breakdown, including the discount rate the
// projection actually used.
type DCFDetails struct {
	WACC            float64         `json:"wacc"`
	GrowthRate      float64         `json:"growth_rate"`
	ProjectedFCF    []ProjectedYear `json:"projected_fcf"`
	TerminalValue   float64         `json:"terminal_value"`
	TerminalValuePV float64         `json:"terminal_value_pv"`
	SumPV           float64         `json:"sum_pv"`
}

// AssetDetails is the adjusted-asset-value breakdown.
type AssetDetails struct {
	BookValue            float64 `json:"book_value"`
	GoodwillMultiplier   float64 `json:"goodwill_multiplier"`
	EstimatedIntangibles float64 `json:"estimated_intangibles"`
	AdjustedValue        float64 `json:"adjusted_value"`
}

// Weights echoes the blend weights in the result so the UI does not hardcode
// them.
type Weights struct {
	Multiples float64 `json:"multiples"`
	DCF       float64 `json:"dcf"`
	Asset     float64 `json:"asset"`
}

// ValueRange is the ±15% band around the blended enterprise value.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Methodologies groups the three per-method results.
type Methodologies struct {
	Multiples MethodResult `json:"multiples"`
	DCF       MethodResult `json:"dcf"`
	Asset     MethodResult `json:"asset"`
}

// ValuationResult is the aggregator's complete output.
type ValuationResult struct {
	EnterpriseValue float64       `json:"enterprise_value"`
	EquityValue     float64       `json:"equity_value"`
	Range           ValueRange    `json:"range"`
	Methodologies   Methodologies `json:"methodologies"`
	Weights         Weights       `json:"weights"`
	SizeDiscount    float64       `json:"size_discount"`

	// Scenario is echoed with its adjustment for display; the adjustment is
	// not applied to the blended value.
	Scenario           refdata.Scenario `json:"scenario,omitempty"`
	ScenarioAdjustment float64          `json:"scenario_adjustment"`

	InvestmentScore score.Result `json:"investment_score"`
	WACC            float64      `json:"wacc"`
	ComputedAt      time.Time    `json:"computed_at"`
}

func floatPtr(v float64) *float64 { return &v }

// degenerate is the zero result a method returns when its inputs cannot
// support the calculation. The empty details map serializes as {} and fails
// any typed assertion downstream.
func degenerate() MethodResult {
	return MethodResult{Value: 0, Details: map[string]interface{}{}}
}
