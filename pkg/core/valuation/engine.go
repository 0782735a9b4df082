package valuation

import (
	"time"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/core/score"
	"sme_valuation/pkg/models"
)

// rangeBand is the fixed ±15% uncertainty band around the blended value,
// independent of each method's own min/max.
const rangeBand = 0.15

// CalculateValuation is the engine's entry point: it runs the three valuation
// methods, blends them 40/40/20, applies the size discount, computes the
// range and equity value, and attaches the investment score and the discount
// rate the DCF actually used.
func CalculateValuation(p *models.CompanyProfile) ValuationResult {
	multiplesResult := CalculateMultiples(p)
	dcfResult := CalculateDCF(p)
	assetResult := CalculateAssetValue(p)

	weightedValue := multiplesResult.Value*WeightMultiples +
		dcfResult.Value*WeightDCF +
		assetResult.Value*WeightAsset

	sizeDiscount := refdata.DefaultSizeDiscount
	if sizeData, ok := refdata.GetSize(p.CompanySize); ok {
		sizeDiscount = sizeData.SizeDiscount
	}
	enterpriseValue := weightedValue * (1 - sizeDiscount)

	netDebt := p.TotalLiabilities - p.CashOnHand
	equityValue := enterpriseValue - netDebt
	if equityValue < 0 {
		equityValue = 0
	}

	// Re-expose the rate the DCF discounted with; when the DCF degraded to a
	// zero result (no details), estimate WACC independently so the field is
	// always populated.
	wacc := 0.0
	if d, ok := dcfResult.Details.(DCFDetails); ok && d.WACC != 0 {
		wacc = d.WACC
	} else {
		wacc = EstimateWACC(p.TotalAssets, p.TotalLiabilities, p.Sector).WACC
	}

	return ValuationResult{
		EnterpriseValue: enterpriseValue,
		EquityValue:     equityValue,
		Range: ValueRange{
			Min: enterpriseValue * (1 - rangeBand),
			Max: enterpriseValue * (1 + rangeBand),
		},
		Methodologies: Methodologies{
			Multiples: multiplesResult,
			DCF:       dcfResult,
			Asset:     assetResult,
		},
		Weights: Weights{
			Multiples: WeightMultiples,
			DCF:       WeightDCF,
			Asset:     WeightAsset,
		},
		SizeDiscount:       sizeDiscount,
		Scenario:           p.Scenario,
		ScenarioAdjustment: refdata.ScenarioAdjustment(p.Scenario),
		InvestmentScore:    score.Calculate(p),
		WACC:               wacc,
		ComputedAt:         time.Now().UTC(),
	}
}
