// Manual verification tool: runs the preloaded example companies through the
// engine and prints the full breakdown for eyeballing against the expected
// methodology numbers.
package main

import (
	"fmt"
	"sort"

	"sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

func main() {
	examples := models.ExampleCompanies()

	keys := make([]string, 0, len(examples))
	for k := range examples {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		profile := examples[key]
		res := valuation.CalculateValuation(&profile)

		fmt.Println("====================================================================")
		fmt.Printf("  %s  (%s / %s)\n", profile.CompanyName, profile.Sector, profile.CompanySize)
		fmt.Println("====================================================================")
		fmt.Printf("%-28s | %15s\n", "LINE", "VALUE")
		fmt.Println("--------------------------------------------------------------------")
		pRow := func(label string, v float64) {
			fmt.Printf("%-28s | %15.0f\n", label, v)
		}
		pRow("Multiples value", res.Methodologies.Multiples.Value)
		pRow("DCF value", res.Methodologies.DCF.Value)
		pRow("Asset value", res.Methodologies.Asset.Value)
		pRow("Enterprise value", res.EnterpriseValue)
		pRow("Range min", res.Range.Min)
		pRow("Range max", res.Range.Max)
		pRow("Equity value", res.EquityValue)
		fmt.Printf("%-28s | %15.4f\n", "WACC", res.WACC)
		fmt.Printf("%-28s | %15.2f\n", "Size discount", res.SizeDiscount)
		fmt.Printf("%-28s | %11d/100 (%s)\n", "Investment score",
			res.InvestmentScore.Score, res.InvestmentScore.Rating)
		for _, f := range res.InvestmentScore.Breakdown {
			fmt.Printf("  %-26s | %6d/%-2d  %s (%s)\n", f.Name, f.Points, f.MaxPoints, f.DisplayValue, f.Status)
		}
		fmt.Println()
	}
}
