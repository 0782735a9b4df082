package valuation

import (
	"math"
	"testing"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/models"
)

func techProfile() *models.CompanyProfile {
	growth := 40.0
	return &models.CompanyProfile{
		Sector:             refdata.SectorTechnology,
		CompanySize:        refdata.SizeSmall,
		AgeYears:           3,
		AnnualRevenues:     []float64{800000, 1200000, 1800000},
		EBITDA:             180000,
		TotalAssets:        500000,
		TotalLiabilities:   150000,
		ExpectedGrowthRate: &growth,
		Scenario:           refdata.ScenarioOptimistic,
	}
}

func TestCalculateMultiplesTechnology(t *testing.T) {
	// evFromEbitda = 180000 * 10 = 1,800,000
	// evFromRevenue = 1,800,000 * 4 = 7,200,000
	// value = 0.7*1.8M + 0.3*7.2M = 1,260,000 + 2,160,000 = 3,420,000
	res := CalculateMultiples(techProfile())

	if math.Abs(res.Value-3420000) > 1e-6 {
		t.Errorf("Expected value 3,420,000, got %f", res.Value)
	}

	// min = 0.7*(180000*8) + 0.3*(1800000*3) = 1,008,000 + 1,620,000 = 2,628,000
	// max = 0.7*(180000*12) + 0.3*(1800000*5) = 1,512,000 + 2,700,000 = 4,212,000
	if res.Min == nil || math.Abs(*res.Min-2628000) > 1e-6 {
		t.Errorf("Expected min 2,628,000, got %v", res.Min)
	}
	if res.Max == nil || math.Abs(*res.Max-4212000) > 1e-6 {
		t.Errorf("Expected max 4,212,000, got %v", res.Max)
	}

	d, ok := res.Details.(MultiplesDetails)
	if !ok {
		t.Fatalf("Expected MultiplesDetails, got %T", res.Details)
	}
	if d.EVEbitdaMultiple != 10 || d.EVRevenueMultiple != 4 {
		t.Errorf("Expected multiples 10x / 4x, got %fx / %fx", d.EVEbitdaMultiple, d.EVRevenueMultiple)
	}
	if math.Abs(d.EVFromEbitda-1800000) > 1e-6 || math.Abs(d.EVFromRevenue-7200000) > 1e-6 {
		t.Errorf("Unexpected component values: %f / %f", d.EVFromEbitda, d.EVFromRevenue)
	}
}

func TestCalculateMultiplesDegenerate(t *testing.T) {
	p := techProfile()
	p.EBITDA = 0
	res := CalculateMultiples(p)
	if res.Value != 0 || res.Min != nil || res.Max != nil {
		t.Errorf("Expected zero result for zero EBITDA, got %+v", res)
	}

	p = techProfile()
	p.Sector = "blockchain"
	res = CalculateMultiples(p)
	if res.Value != 0 {
		t.Errorf("Expected zero result for unknown sector, got %f", res.Value)
	}
}

func TestCalculateMultiplesNegativeEBITDA(t *testing.T) {
	// Negative EBITDA is not degenerate; it flows through the blend and
	// drags the value down.
	p := techProfile()
	p.EBITDA = -100000
	res := CalculateMultiples(p)

	// 0.7*(-100000*10) + 0.3*(1800000*4) = -700,000 + 2,160,000
	if math.Abs(res.Value-1460000) > 1e-6 {
		t.Errorf("Expected 1,460,000 with negative EBITDA, got %f", res.Value)
	}
}

func TestCalculateMultiplesEmptyRevenues(t *testing.T) {
	// No revenue history: the revenue leg contributes zero.
	p := techProfile()
	p.AnnualRevenues = nil
	res := CalculateMultiples(p)
	if math.Abs(res.Value-1260000) > 1e-6 {
		t.Errorf("Expected 1,260,000 from the EBITDA leg alone, got %f", res.Value)
	}
}
