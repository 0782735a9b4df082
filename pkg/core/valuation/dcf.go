package valuation

import (
	"math"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/models"
)

// fcfConversion stands in for "after-tax earnings minus net reinvestment":
// FCF ≈ EBITDA × (1 − tax) × 0.85. An intentional simplification of the full
// capex/depreciation/working-capital build-up, kept for a single-line SME
// projection.
const fcfConversion = 0.85

// minTerminalSpread floors the Gordon-growth denominator (wacc − g). The
// WACC clamp already keeps the spread at 0.06 for the default assumptions;
// this only matters for pathological discount-rate overrides.
const minTerminalSpread = 0.01

// CalculateDCF values the company with a simplified five-year discounted
// free-cash-flow projection plus a Gordon-growth terminal value. The EBITDA
// compounds on itself at the expected growth rate starting from the input
// year. Zero EBITDA or a missing growth rate yields the degenerate zero
// result.
func CalculateDCF(p *models.CompanyProfile) MethodResult {
	if p.EBITDA == 0 || p.ExpectedGrowthRate == nil {
		return degenerate()
	}

	asm := refdata.Defaults()

	wacc := 0.0
	if p.DiscountRateOverride != nil && *p.DiscountRateOverride != 0 {
		wacc = *p.DiscountRateOverride
	} else {
		wacc = EstimateWACC(p.TotalAssets, p.TotalLiabilities, p.Sector).WACC
	}

	growthRate := *p.ExpectedGrowthRate / 100
	years := asm.ProjectionYears

	projected := make([]ProjectedYear, 0, years)
	currentEbitda := p.EBITDA
	sumPV := 0.0

	for year := 1; year <= years; year++ {
		currentEbitda *= 1 + growthRate

		fcf := currentEbitda * (1 - asm.TaxRate) * fcfConversion

		discountFactor := math.Pow(1+wacc, float64(year))
		presentValue := fcf / discountFactor

		projected = append(projected, ProjectedYear{
			Year:           year,
			EBITDA:         currentEbitda,
			FCF:            fcf,
			DiscountFactor: discountFactor,
			PresentValue:   presentValue,
		})
		sumPV += presentValue
	}

	finalFCF := projected[years-1].FCF
	spread := wacc - asm.TerminalGrowth
	if spread < minTerminalSpread {
		spread = minTerminalSpread
	}
	terminalValue := finalFCF * (1 + asm.TerminalGrowth) / spread
	terminalValuePV := terminalValue / math.Pow(1+wacc, float64(years))

	return MethodResult{
		Value: sumPV + terminalValuePV,
		Details: DCFDetails{
			WACC:            wacc,
			GrowthRate:      growthRate,
			ProjectedFCF:    projected,
			TerminalValue:   terminalValue,
			TerminalValuePV: terminalValuePV,
			SumPV:           sumPV,
		},
	}
}
