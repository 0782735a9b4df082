// Package report renders a valuation result as a markdown document and as
// HTML. The content mirrors what the results dashboard shows: blended value
// and range, per-method breakdown, the DCF projection table and the
// investment score. Rendering is a collaborator concern; nothing here feeds
// back into engine math.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

// BuildMarkdown assembles the full valuation report in GitHub-flavored
// markdown.
func BuildMarkdown(p *models.CompanyProfile, res *valuation.ValuationResult) string {
	var b strings.Builder

	name := p.CompanyName
	if name == "" {
		name = "Company"
	}

	sectorName := string(p.Sector)
	if sp, ok := refdata.GetSector(p.Sector); ok {
		sectorName = sp.Name
	}
	sizeName := string(p.CompanySize)
	if sz, ok := refdata.GetSize(p.CompanySize); ok {
		sizeName = sz.Name
	}

	fmt.Fprintf(&b, "# Valuation Report — %s\n\n", name)
	fmt.Fprintf(&b, "Generated %s\n\n", res.ComputedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Fprintf(&b, "## Company\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Sector | %s |\n", sectorName)
	fmt.Fprintf(&b, "| Size | %s |\n", sizeName)
	fmt.Fprintf(&b, "| Age | %d years |\n", p.AgeYears)
	fmt.Fprintf(&b, "| Latest revenue | %s |\n", formatMoney(p.LatestRevenue()))
	fmt.Fprintf(&b, "| EBITDA | %s |\n\n", formatMoney(p.EBITDA))

	fmt.Fprintf(&b, "## Estimated Value\n\n")
	fmt.Fprintf(&b, "**Enterprise value: %s** (range %s – %s)\n\n",
		formatMoney(res.EnterpriseValue), formatMoney(res.Range.Min), formatMoney(res.Range.Max))
	fmt.Fprintf(&b, "Equity value: %s · Size discount applied: %.0f%% · WACC: %.2f%%\n\n",
		formatMoney(res.EquityValue), res.SizeDiscount*100, res.WACC*100)

	fmt.Fprintf(&b, "## Methodologies\n\n")
	fmt.Fprintf(&b, "| Method | Weight | Value |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Comparable Multiples | %.0f%% | %s |\n", res.Weights.Multiples*100, formatMoney(res.Methodologies.Multiples.Value))
	fmt.Fprintf(&b, "| Discounted Cash Flow | %.0f%% | %s |\n", res.Weights.DCF*100, formatMoney(res.Methodologies.DCF.Value))
	fmt.Fprintf(&b, "| Adjusted Asset Value | %.0f%% | %s |\n\n", res.Weights.Asset*100, formatMoney(res.Methodologies.Asset.Value))

	if d, ok := res.Methodologies.DCF.Details.(valuation.DCFDetails); ok {
		fmt.Fprintf(&b, "### DCF Projection\n\n")
		fmt.Fprintf(&b, "| Year | EBITDA | FCF | Present Value |\n|---|---|---|---|\n")
		for _, yr := range d.ProjectedFCF {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
				yr.Year, formatMoney(yr.EBITDA), formatMoney(yr.FCF), formatMoney(yr.PresentValue))
		}
		fmt.Fprintf(&b, "\nTerminal value: %s (PV %s)\n\n", formatMoney(d.TerminalValue), formatMoney(d.TerminalValuePV))
	}

	fmt.Fprintf(&b, "## Investment Readiness Score: %d/100 (%s)\n\n",
		res.InvestmentScore.Score, res.InvestmentScore.Rating)
	fmt.Fprintf(&b, "| Factor | Points | Max | Value | Status |\n|---|---|---|---|---|\n")
	for _, f := range res.InvestmentScore.Breakdown {
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s |\n",
			f.Name, f.Points, f.MaxPoints, f.DisplayValue, f.Status)
	}
	b.WriteString("\n")

	if len(res.InvestmentScore.Badges) > 0 {
		for _, badge := range res.InvestmentScore.Badges {
			fmt.Fprintf(&b, "- %s %s\n", badge.Icon, badge.Label)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\n*Best-effort estimate from a fixed methodology; not investment advice.*\n")

	return b.String()
}

// RenderHTML converts the markdown report to HTML. GFM tables are enabled
// because the report is mostly tables.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// formatMoney abbreviates large amounts the way the results dashboard does.
func formatMoney(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%s$%.1fB", neg, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s$%.1fM", neg, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s$%.0fK", neg, v/1e3)
	default:
		return fmt.Sprintf("%s$%.0f", neg, v)
	}
}
