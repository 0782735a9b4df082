// Package summary produces a short prose reading of a valuation result via
// an LLM provider. A collaborator around the engine: the engine's numbers go
// in, text comes out, nothing flows back.
package summary

import (
	"context"
	"fmt"
	"strings"

	"sme_valuation/pkg/core/llm"
	"sme_valuation/pkg/core/refdata"
	"sme_valuation/pkg/core/utils"
	"sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

// Summary is the structured reply we ask the model for.
type Summary struct {
	Headline  string   `json:"headline"`
	Narrative string   `json:"narrative"`
	Strengths []string `json:"strengths"`
	Risks     []string `json:"risks"`
}

const systemPrompt = `You are a financial analyst writing for a small-business
owner with no finance background. Reply with a JSON object only, with keys
"headline" (one sentence), "narrative" (2-3 short paragraphs), "strengths"
(array of strings) and "risks" (array of strings). Plain language, no jargon,
no investment advice.`

// Generate asks the provider for a prose summary of the valuation. The
// apiKey is session-scoped: passed through per call, never stored.
func Generate(ctx context.Context, provider llm.Provider, apiKey string, p *models.CompanyProfile, res *valuation.ValuationResult) (*Summary, error) {
	prompt := buildPrompt(p, res)

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	if apiKey != "" {
		options["api_key"] = apiKey
	}

	raw, err := provider.GenerateResponse(ctx, prompt, systemPrompt, options)
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	var s Summary
	if err := utils.SmartParse(utils.CleanMarkdown(raw), &s); err != nil {
		return nil, fmt.Errorf("could not parse summary reply: %w", err)
	}
	return &s, nil
}

func buildPrompt(p *models.CompanyProfile, res *valuation.ValuationResult) string {
	var b strings.Builder

	sectorName := string(p.Sector)
	if sp, ok := refdata.GetSector(p.Sector); ok {
		sectorName = sp.Name
	}

	fmt.Fprintf(&b, "Company: %s sector, %d years old, latest revenue %.0f, EBITDA %.0f.\n",
		sectorName, p.AgeYears, p.LatestRevenue(), p.EBITDA)
	fmt.Fprintf(&b, "Estimated enterprise value: %.0f (range %.0f to %.0f).\n",
		res.EnterpriseValue, res.Range.Min, res.Range.Max)
	fmt.Fprintf(&b, "Equity value: %.0f. Discount rate used: %.1f%%.\n",
		res.EquityValue, res.WACC*100)
	fmt.Fprintf(&b, "Method values: multiples %.0f, DCF %.0f, asset %.0f (weights 40/40/20).\n",
		res.Methodologies.Multiples.Value, res.Methodologies.DCF.Value, res.Methodologies.Asset.Value)
	fmt.Fprintf(&b, "Investment readiness score: %d/100 (%s). Factor points: ",
		res.InvestmentScore.Score, res.InvestmentScore.Rating)
	for i, f := range res.InvestmentScore.Breakdown {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %d/%d", f.Name, f.Points, f.MaxPoints)
	}
	b.WriteString(".\nSummarize what these numbers mean for the owner.")

	return b.String()
}
