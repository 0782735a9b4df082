package score

import "sme_valuation/pkg/models"

// Badge is a qualitative flag attached to the score. Badges are cumulative
// and order-stable: positive badges first, then warnings. Conditions are
// distinct triggers, so no de-duplication is needed.
type Badge struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Tone  string `json:"tone"` // success, info, accent, warning, danger
}

func collectBadges(p *models.CompanyProfile, m metrics, total int) []Badge {
	var badges []Badge

	if m.ebitdaMargin >= 15 {
		badges = append(badges, Badge{Icon: "🏆", Label: "Healthy EBITDA", Tone: "success"})
	}
	if m.debtRatio <= 2 {
		badges = append(badges, Badge{Icon: "💪", Label: "Low Leverage", Tone: "success"})
	}
	if m.cagr >= 10 {
		badges = append(badges, Badge{Icon: "📈", Label: "High Growth", Tone: "success"})
	}
	if m.currentRatio >= 1.5 {
		badges = append(badges, Badge{Icon: "⚡", Label: "Liquid", Tone: "info"})
	}
	if p.AgeYears >= 10 {
		badges = append(badges, Badge{Icon: "🏛️", Label: "Established Company", Tone: "info"})
	}
	if total >= 80 {
		badges = append(badges, Badge{Icon: "⭐", Label: "Top Performer", Tone: "accent"})
	}

	// Red flags.
	if m.ebitdaMargin < 5 {
		badges = append(badges, Badge{Icon: "⚠️", Label: "Thin Margin", Tone: "warning"})
	}
	if m.debtRatio > 6 {
		badges = append(badges, Badge{Icon: "🚨", Label: "High Leverage", Tone: "danger"})
	}
	if m.currentRatio < 1 {
		badges = append(badges, Badge{Icon: "🔴", Label: "Liquidity Risk", Tone: "danger"})
	}

	return badges
}
