package valuation

import (
	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/models"
)

// CalculateAssetValue values the company with the book-value-plus-goodwill
// method: book equity scaled by an age/size goodwill multiplier plus an
// intangibles estimate. The result is floored at book value — which can
// itself be negative when liabilities exceed assets; an insolvent balance
// sheet is meant to read as low or negative asset value.
func CalculateAssetValue(p *models.CompanyProfile) MethodResult {
	if p.TotalAssets == 0 {
		return degenerate()
	}

	bookValue := p.TotalAssets - p.TotalLiabilities

	// Age premium: highest matching tier only.
	goodwillMultiplier := 1.0
	switch {
	case p.AgeYears >= 10:
		goodwillMultiplier += 0.15
	case p.AgeYears >= 5:
		goodwillMultiplier += 0.08
	case p.AgeYears >= 2:
		goodwillMultiplier += 0.03
	}

	switch p.CompanySize {
	case refdata.SizeMedium:
		goodwillMultiplier += 0.10
	case refdata.SizeSmall:
		goodwillMultiplier += 0.05
	}

	// Brand, relationships, know-how. Technology and professional services
	// carry more unbooked intangible value.
	intangibleFactor := 0.05
	if p.Sector == refdata.SectorTechnology || p.Sector == refdata.SectorServices {
		intangibleFactor = 0.15
	}
	estimatedIntangibles := p.TotalAssets * intangibleFactor

	adjustedValue := bookValue*goodwillMultiplier + estimatedIntangibles

	value := adjustedValue
	if bookValue > value {
		value = bookValue
	}

	return MethodResult{
		Value: value,
		Min:   floatPtr(bookValue),
		Max:   floatPtr(adjustedValue * 1.2),
		Details: AssetDetails{
			BookValue:            bookValue,
			GoodwillMultiplier:   goodwillMultiplier,
			EstimatedIntangibles: estimatedIntangibles,
			AdjustedValue:        adjustedValue,
		},
	}
}
