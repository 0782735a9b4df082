// Package models holds the plain data records shared across the engine,
// store and API layers.
package models

import "sme_valuation/pkg/core/refdata"

// CompanyProfile is the engine's single input record. All numeric fields are
// expected to be fully parsed by the caller; the engine never rejects a
// degenerate profile, it degrades to zero-valued method results instead.
type CompanyProfile struct {
	CompanyName string              `json:"company_name,omitempty"`
	Sector      refdata.Sector      `json:"sector"`
	CompanySize refdata.CompanySize `json:"company_size"`
	AgeYears    int                 `json:"age_years"`

	// AnnualRevenues is chronological; the last element is the most recent
	// year. Used for the latest-revenue multiple and the CAGR factor.
	AnnualRevenues []float64 `json:"annual_revenues"`

	EBITDA           float64 `json:"ebitda"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	CashOnHand       float64 `json:"cash_on_hand,omitempty"`
	EmployeeCount    int     `json:"employee_count,omitempty"`

	// ExpectedGrowthRate is a percentage (10 = 10%/yr). Nil means the DCF
	// method degrades to a zero result.
	ExpectedGrowthRate *float64 `json:"expected_growth_rate,omitempty"`

	// DiscountRateOverride is a decimal (e.g. 0.15). Nil means WACC is
	// estimated from the capital structure.
	DiscountRateOverride *float64 `json:"discount_rate_override,omitempty"`

	Scenario refdata.Scenario `json:"scenario,omitempty"`
}

// LatestRevenue returns the most recent year's revenue, 0 for an empty
// history.
func (p *CompanyProfile) LatestRevenue() float64 {
	if len(p.AnnualRevenues) == 0 {
		return 0
	}
	return p.AnnualRevenues[len(p.AnnualRevenues)-1]
}
