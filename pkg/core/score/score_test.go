package score

import (
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
	}
}

func TestCalculateTechStartup(t *testing.T) {
	// margin = 180000/1800000 = 10%          -> 15 (good)
	// debt/EBITDA = 150000/180000 = 0.83x    -> 20 (excellent)
	// CAGR = sqrt(1800000/800000)-1 = 50%    -> 20 (excellent)
	// size small                             -> 10 (good)
	// age 3                                  ->  4 (fair)
	// liquidity = 500000/150000 = 3.33x      -> 10 (excellent)
	// total 79 -> Good
	res := Calculate(techProfile())

	if res.Score != 79 {
		t.Errorf("Expected score 79, got %d", res.Score)
	}
	if res.Rating != "Good" {
		t.Errorf("Expected rating Good, got %s", res.Rating)
	}
	if len(res.Breakdown) != 6 {
		t.Fatalf("Expected 6 factors, got %d", len(res.Breakdown))
	}

	expected := []struct {
		points int
		max    int
		status Status
	}{
		{15, 25, StatusGood},
		{20, 20, StatusExcellent},
		{20, 20, StatusExcellent},
		{10, 15, StatusGood},
		{4, 10, StatusFair},
		{10, 10, StatusExcellent},
	}
	for i, e := range expected {
		f := res.Breakdown[i]
		if f.Points != e.points || f.MaxPoints != e.max || f.Status != e.status {
			t.Errorf("Factor %d (%s): expected %d/%d %s, got %d/%d %s",
				i, f.Name, e.points, e.max, e.status, f.Points, f.MaxPoints, f.Status)
		}
		if f.Points > f.MaxPoints {
			t.Errorf("Factor %s exceeds its max: %d > %d", f.Name, f.Points, f.MaxPoints)
		}
	}

	// Badges: low leverage, high growth, liquid. Margin sits at 10% (below
	// the 15% badge bar) and score 79 misses Top Performer.
	if len(res.Badges) != 3 {
		t.Fatalf("Expected 3 badges, got %d: %+v", len(res.Badges), res.Badges)
	}
	labels := []string{"Low Leverage", "High Growth", "Liquid"}
	for i, l := range labels {
		if res.Badges[i].Label != l {
			t.Errorf("Badge %d: expected %q, got %q", i, l, res.Badges[i].Label)
		}
	}
}

func TestCalculateSingleRevenueYear(t *testing.T) {
	// Fewer than two revenue points: growth factor scores 0 and reports
	// CAGR as 0.
	p := techProfile()
	p.AnnualRevenues = []float64{100000}
	res := Calculate(p)

	growth := res.Breakdown[2]
	if growth.Points != 0 {
		t.Errorf("Expected 0 growth points for single year, got %d", growth.Points)
	}
	if growth.DisplayValue != "0.0%" {
		t.Errorf("Expected CAGR displayed as 0.0%%, got %s", growth.DisplayValue)
	}
}

func TestCalculateNegativeEBITDA(t *testing.T) {
	// Non-positive EBITDA pins debt/EBITDA to the 999 sentinel: 0 points
	// plus the high-leverage red flag.
	p := techProfile()
	p.EBITDA = -50000
	res := Calculate(p)

	debt := res.Breakdown[1]
	if debt.Points != 0 || debt.Status != StatusPoor {
		t.Errorf("Expected 0 poor debt factor, got %d %s", debt.Points, debt.Status)
	}

	found := false
	for _, b := range res.Badges {
		if b.Label == "High Leverage" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected High Leverage badge, got %+v", res.Badges)
	}
}

func TestCalculateNoLiabilities(t *testing.T) {
	// Zero liabilities pins the current ratio to 999: full liquidity
	// points and the Liquid badge.
	p := techProfile()
	p.TotalLiabilities = 0
	res := Calculate(p)

	liquidity := res.Breakdown[5]
	if liquidity.Points != 10 || liquidity.Status != StatusExcellent {
		t.Errorf("Expected full liquidity points, got %d %s", liquidity.Points, liquidity.Status)
	}
}

func TestCalculateUnknownSize(t *testing.T) {
	p := techProfile()
	p.CompanySize = "gigantic"
	res := Calculate(p)

	size := res.Breakdown[3]
	if size.Points != refdata.DefaultSizeScorePoints {
		t.Errorf("Expected default %d size points, got %d", refdata.DefaultSizeScorePoints, size.Points)
	}
	if size.DisplayValue != "gigantic" {
		t.Errorf("Expected raw key as display value, got %s", size.DisplayValue)
	}
}

func TestCalculateTopPerformer(t *testing.T) {
	// A strong profile across all factors: margin 20% (25), debt 0.5x
	// (20), CAGR 100% (20), medium size (15), age 15 (10), liquidity 15x
	// (10) = 100.
	growth := 10.0
	p := &models.CompanyProfile{
		Sector:             refdata.SectorHealth,
		CompanySize:        refdata.SizeMedium,
		AgeYears:           15,
		AnnualRevenues:     []float64{1000000, 2000000},
		EBITDA:             400000,
		TotalAssets:        3000000,
		TotalLiabilities:   200000,
		ExpectedGrowthRate: &growth,
	}
	res := Calculate(p)

	if res.Score != 100 {
		t.Errorf("Expected perfect score 100, got %d", res.Score)
	}
	if res.Rating != "Excellent" {
		t.Errorf("Expected Excellent rating, got %s", res.Rating)
	}

	hasTop := false
	for _, b := range res.Badges {
		if b.Label == "Top Performer" {
			hasTop = true
		}
	}
	if !hasTop {
		t.Errorf("Expected Top Performer badge at score %d", res.Score)
	}
}

func TestScoreBoundsAcrossProfiles(t *testing.T) {
	profiles := []*models.CompanyProfile{
		{},
		{EBITDA: -1000, TotalLiabilities: 1e9, AnnualRevenues: []float64{1}},
		{Sector: refdata.SectorAgro, CompanySize: refdata.SizeMicro, AgeYears: 1,
			AnnualRevenues: []float64{100, 50}, EBITDA: 1, TotalAssets: 1, TotalLiabilities: 1000},
	}
	for i, p := range profiles {
		res := Calculate(p)
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("profile %d: score %d out of [0,100]", i, res.Score)
		}
		for _, f := range res.Breakdown {
			if f.Points > f.MaxPoints || f.Points < 0 {
				t.Errorf("profile %d: factor %s points %d out of [0,%d]", i, f.Name, f.Points, f.MaxPoints)
			}
		}
	}
}
