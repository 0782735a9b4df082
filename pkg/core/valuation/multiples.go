package valuation

import (
	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/models"
)

// Blend weights for the multiples method. EBITDA multiples carry more weight
// because SME revenue multiples are the less reliable comparable.
const (
	ebitdaBlendWeight  = 0.7
	revenueBlendWeight = 0.3
)

// CalculateMultiples values the company with the comparable-multiples method:
// a 70/30 blend of the sector's typical EV/EBITDA and EV/Revenue multiples.
// The min/max bounds use the sector's min and max multiples under the same
// blend. Unknown sector or zero EBITDA yields the degenerate zero result.
func CalculateMultiples(p *models.CompanyProfile) MethodResult {
	sectorData, ok := refdata.GetSector(p.Sector)
	if !ok || p.EBITDA == 0 {
		return degenerate()
	}

	latestRevenue := p.LatestRevenue()

	evFromEbitda := p.EBITDA * sectorData.EVEbitda.Typical
	evFromRevenue := latestRevenue * sectorData.EVRevenue.Typical

	value := evFromEbitda*ebitdaBlendWeight + evFromRevenue*revenueBlendWeight

	min := p.EBITDA*sectorData.EVEbitda.Min*ebitdaBlendWeight +
		latestRevenue*sectorData.EVRevenue.Min*revenueBlendWeight
	max := p.EBITDA*sectorData.EVEbitda.Max*ebitdaBlendWeight +
		latestRevenue*sectorData.EVRevenue.Max*revenueBlendWeight

	return MethodResult{
		Value: value,
		Min:   floatPtr(min),
		Max:   floatPtr(max),
		Details: MultiplesDetails{
			EVEbitdaMultiple:  sectorData.EVEbitda.Typical,
			EVRevenueMultiple: sectorData.EVRevenue.Typical,
			EVFromEbitda:      evFromEbitda,
			EVFromRevenue:     evFromRevenue,
		},
	}
}
