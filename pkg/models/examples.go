package models

import "sme_valuation/pkg/core/refdata"

// ExampleCompanies are preloaded demo profiles, used by the verify tool and
// as fixtures in tests.
func ExampleCompanies() map[string]CompanyProfile {
	growth40 := 40.0
	growth5 := 5.0
	growth2 := 2.0

	return map[string]CompanyProfile{
		"techStartup": {
			CompanyName:        "TechStart SaaS",
			Sector:             refdata.SectorTechnology,
			CompanySize:        refdata.SizeSmall,
			AgeYears:           3,
			AnnualRevenues:     []float64{800000, 1200000, 1800000},
			EBITDA:             180000,
			TotalAssets:        500000,
			TotalLiabilities:   150000,
			EmployeeCount:      25,
			ExpectedGrowthRate: &growth40,
			Scenario:           refdata.ScenarioOptimistic,
		},
		"consolidatedRetail": {
			CompanyName:        "Central Distribution Co",
			Sector:             refdata.SectorRetail,
			CompanySize:        refdata.SizeMedium,
			AgeYears:           15,
			AnnualRevenues:     []float64{5000000, 5200000, 5500000},
			EBITDA:             440000,
			TotalAssets:        3000000,
			TotalLiabilities:   1200000,
			EmployeeCount:      120,
			ExpectedGrowthRate: &growth5,
			Scenario:           refdata.ScenarioBase,
		},
		"traditionalManufacturing": {
			CompanyName:        "Industrial Metalworks",
			Sector:             refdata.SectorManufacturing,
			CompanySize:        refdata.SizeMedium,
			AgeYears:           25,
			AnnualRevenues:     []float64{8000000, 8100000, 8200000},
			EBITDA:             1200000,
			TotalAssets:        6000000,
			TotalLiabilities:   2500000,
			EmployeeCount:      180,
			ExpectedGrowthRate: &growth2,
			Scenario:           refdata.ScenarioPessimistic,
		},
	}
}
