// Package score implements the 0–100 investment readiness score: six
// independently scored factors (margin, leverage, growth, size, age,
// liquidity) summing to 100 max, a categorical rating, and qualitative
// badges. It consumes the raw company profile, not the valuation outputs.
package score

import (
	"fmt"
	"math"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/models"
)

// Status tags a factor with the threshold tier it landed in.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
)

// Factor is one scored line of the breakdown.
type Factor struct {
	Name         string `json:"name"`
	Points       int    `json:"points"`
	MaxPoints    int    `json:"max_points"`
	DisplayValue string `json:"display_value"`
	Status       Status `json:"status"`
}

// Result is the composite score output.
type Result struct {
	Score     int      `json:"score"`
	Rating    string   `json:"rating"`
	Breakdown []Factor `json:"breakdown"`
	Badges    []Badge  `json:"badges"`
}

// metrics are the intermediate ratios shared by factors and badges.
type metrics struct {
	ebitdaMargin float64 // percent
	debtRatio    float64 // liabilities / EBITDA, 999 when EBITDA <= 0
	cagr         float64 // percent, 0 without >= 2 revenue years
	currentRatio float64 // assets / liabilities, 999 when liabilities <= 0
}

type factorFunc func(*models.CompanyProfile, metrics) Factor

// Calculate scores the profile across the six factors and derives the rating
// and badges. The factor order is fixed; summing is a fold over the pipeline.
func Calculate(p *models.CompanyProfile) Result {
	m := computeMetrics(p)

	pipeline := []factorFunc{
		marginFactor,
		debtFactor,
		growthFactor,
		sizeFactor,
		ageFactor,
		liquidityFactor,
	}

	total := 0
	breakdown := make([]Factor, 0, len(pipeline))
	for _, f := range pipeline {
		factor := f(p, m)
		total += factor.Points
		breakdown = append(breakdown, factor)
	}

	return Result{
		Score:     total,
		Rating:    ratingFor(total),
		Breakdown: breakdown,
		Badges:    collectBadges(p, m, total),
	}
}

func computeMetrics(p *models.CompanyProfile) metrics {
	m := metrics{
		ebitdaMargin: p.EBITDA / p.LatestRevenue() * 100,
		debtRatio:    999,
		currentRatio: 999,
	}
	if p.EBITDA > 0 {
		m.debtRatio = p.TotalLiabilities / p.EBITDA
	}
	if p.TotalLiabilities > 0 {
		m.currentRatio = p.TotalAssets / p.TotalLiabilities
	}
	if len(p.AnnualRevenues) >= 2 {
		first := p.AnnualRevenues[0]
		last := p.LatestRevenue()
		years := float64(len(p.AnnualRevenues) - 1)
		m.cagr = (math.Pow(last/first, 1/years) - 1) * 100
	}
	return m
}

func marginFactor(p *models.CompanyProfile, m metrics) Factor {
	points := 3
	status := StatusPoor
	switch {
	case m.ebitdaMargin >= 15:
		points, status = 25, StatusExcellent
	case m.ebitdaMargin >= 10:
		points, status = 15, StatusGood
	case m.ebitdaMargin >= 5:
		points, status = 8, StatusFair
	}
	return Factor{
		Name:         "EBITDA Margin",
		Points:       points,
		MaxPoints:    25,
		DisplayValue: fmt.Sprintf("%.1f%%", m.ebitdaMargin),
		Status:       status,
	}
}

func debtFactor(p *models.CompanyProfile, m metrics) Factor {
	points := 0
	status := StatusPoor
	switch {
	case m.debtRatio <= 2:
		points, status = 20, StatusExcellent
	case m.debtRatio <= 4:
		points, status = 12, StatusGood
	case m.debtRatio <= 6:
		points, status = 5, StatusFair
	}
	return Factor{
		Name:         "Debt/EBITDA Ratio",
		Points:       points,
		MaxPoints:    20,
		DisplayValue: fmt.Sprintf("%.1fx", m.debtRatio),
		Status:       status,
	}
}

func growthFactor(p *models.CompanyProfile, m metrics) Factor {
	// A single revenue year scores zero: no trend to reward.
	points := 0
	status := StatusPoor
	if len(p.AnnualRevenues) >= 2 {
		switch {
		case m.cagr >= 15:
			points, status = 20, StatusExcellent
		case m.cagr >= 10:
			points, status = 15, StatusGood
		case m.cagr >= 5:
			points, status = 10, StatusFair
		case m.cagr >= 0:
			points, status = 5, StatusPoor
		}
	}
	return Factor{
		Name:         "Revenue Growth (CAGR)",
		Points:       points,
		MaxPoints:    20,
		DisplayValue: fmt.Sprintf("%.1f%%", m.cagr),
		Status:       status,
	}
}

func sizeFactor(p *models.CompanyProfile, m metrics) Factor {
	points := refdata.DefaultSizeScorePoints
	display := string(p.CompanySize)
	if sizeData, ok := refdata.GetSize(p.CompanySize); ok {
		points = sizeData.ScorePoints
		display = sizeData.Name
	}
	status := StatusFair
	switch {
	case points >= 12:
		status = StatusExcellent
	case points >= 8:
		status = StatusGood
	}
	return Factor{
		Name:         "Size/Scale",
		Points:       points,
		MaxPoints:    15,
		DisplayValue: display,
		Status:       status,
	}
}

func ageFactor(p *models.CompanyProfile, m metrics) Factor {
	points := 2
	status := StatusPoor
	switch {
	case p.AgeYears >= 10:
		points, status = 10, StatusExcellent
	case p.AgeYears >= 5:
		points, status = 7, StatusGood
	case p.AgeYears >= 2:
		points, status = 4, StatusFair
	}
	return Factor{
		Name:         "Company Age",
		Points:       points,
		MaxPoints:    10,
		DisplayValue: fmt.Sprintf("%d years", p.AgeYears),
		Status:       status,
	}
}

func liquidityFactor(p *models.CompanyProfile, m metrics) Factor {
	points := 0
	status := StatusPoor
	switch {
	case m.currentRatio >= 1.5:
		points, status = 10, StatusExcellent
	case m.currentRatio >= 1.2:
		points, status = 7, StatusGood
	case m.currentRatio >= 1.0:
		points, status = 4, StatusFair
	}
	return Factor{
		Name:         "Liquidity",
		Points:       points,
		MaxPoints:    10,
		DisplayValue: fmt.Sprintf("%.2fx", m.currentRatio),
		Status:       status,
	}
}

func ratingFor(total int) string {
	switch {
	case total >= 80:
		return "Excellent"
	case total >= 60:
		return "Good"
	case total >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}
