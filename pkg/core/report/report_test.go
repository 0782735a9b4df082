package report

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

func sampleResult(t *testing.T) (*models.CompanyProfile, *valuation.ValuationResult) {
	t.Helper()
	growth := 40.0
	p := &models.CompanyProfile{
		CompanyName:        "Acme Labs",
		Sector:             refdata.SectorTechnology,
		CompanySize:        refdata.SizeSmall,
		AgeYears:           3,
		AnnualRevenues:     []float64{800000, 1200000, 1800000},
		EBITDA:             180000,
		TotalAssets:        500000,
		TotalLiabilities:   150000,
		ExpectedGrowthRate: &growth,
	}
	res := valuation.CalculateValuation(p)
	return p, &res
}

func TestBuildMarkdownSections(t *testing.T) {
	p, res := sampleResult(t)
	md := BuildMarkdown(p, res)

	assert.True(t, strings.HasPrefix(md, "# Valuation Report — Acme Labs"))
	assert.Contains(t, md, "## Company")
	assert.Contains(t, md, "| Sector | Technology / Software |")
	assert.Contains(t, md, "| Size | Small Enterprise |")
	assert.Contains(t, md, "## Estimated Value")
	assert.Contains(t, md, "## Methodologies")
	assert.Contains(t, md, "| Comparable Multiples | 40% |")
	assert.Contains(t, md, "| Discounted Cash Flow | 40% |")
	assert.Contains(t, md, "| Adjusted Asset Value | 20% |")
	assert.Contains(t, md, "### DCF Projection")
	assert.Contains(t, md, "## Investment Readiness Score: 79/100 (Good)")
	assert.Contains(t, md, "not investment advice")
}

func TestBuildMarkdownFallbackNames(t *testing.T) {
	// Anonymous company with unknown sector/size keys falls back to the raw
	// keys instead of display names.
	p, res := sampleResult(t)
	p.CompanyName = ""
	p.Sector = "blockchain"
	p.CompanySize = "gigantic"
	md := BuildMarkdown(p, res)

	assert.Contains(t, md, "# Valuation Report — Company")
	assert.Contains(t, md, "| Sector | blockchain |")
	assert.Contains(t, md, "| Size | gigantic |")
}

func TestBuildMarkdownSkipsDCFTableWhenDegenerate(t *testing.T) {
	p, _ := sampleResult(t)
	p.EBITDA = 0
	res := valuation.CalculateValuation(p)
	md := BuildMarkdown(p, &res)

	assert.NotContains(t, md, "### DCF Projection")
}

func TestRenderHTMLTables(t *testing.T) {
	p, res := sampleResult(t)
	html, err := RenderHTML(BuildMarkdown(p, res))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Valuation Report — Acme Labs", doc.Find("h1").First().Text())

	// Company, methodologies, DCF projection and score breakdown tables.
	assert.Equal(t, 4, doc.Find("table").Length())

	// Five projection years in the DCF table.
	rows := 0
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		if strings.Contains(tbl.Find("th").Text(), "Present Value") {
			rows = tbl.Find("tbody tr").Length()
		}
	})
	assert.Equal(t, 5, rows)

	// Badges render as a list.
	assert.Greater(t, doc.Find("li").Length(), 0)
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2500000000, "$2.5B"},
		{3420000, "$3.4M"},
		{453000, "$453K"},
		{999, "$999"},
		{0, "$0"},
		{-1460000, "-$1.5M"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatMoney(c.in), "formatMoney(%f)", c.in)
	}
}
