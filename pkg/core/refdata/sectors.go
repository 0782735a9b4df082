// Package refdata holds the static reference tables the valuation engine
// reads: sector multiple ranges and benchmarks, company size categories,
// scenario adjustments and the global default assumptions. All tables are
// initialized once and must never be mutated; lookups on unknown keys fall
// back to documented defaults instead of failing.
package refdata

// Sector is an enumerated key into the sector table.
type Sector string

const (
	SectorTechnology    Sector = "technology"
	SectorRetail        Sector = "retail"
	SectorManufacturing Sector = "manufacturing"
	SectorServices      Sector = "services"
	SectorFood          Sector = "food"
	SectorConstruction  Sector = "construction"
	SectorHealth        Sector = "health"
	SectorAgro          Sector = "agro"
	SectorLogistics     Sector = "logistics"
)

// Range is a min/typical/max band for a valuation multiple.
type Range struct {
	Min     float64 `json:"min"`
	Typical float64 `json:"typical"`
	Max     float64 `json:"max"`
}

// Benchmarks are sector reference metrics for presentation. The engine math
// does not consume them.
type Benchmarks struct {
	EBITDAMargin float64 `json:"ebitda_margin"` // percent
	Growth       float64 `json:"growth"`        // percent
	ROIC         float64 `json:"roic"`          // percent
	DebtToEBITDA float64 `json:"debt_to_ebitda"`
}

// SectorProfile holds valuation multiples and risk data for one sector.
type SectorProfile struct {
	Name        string     `json:"name"`
	EVEbitda    Range      `json:"ev_ebitda"`
	EVRevenue   Range      `json:"ev_revenue"`
	PERatio     Range      `json:"pe_ratio"`
	RiskPremium float64    `json:"risk_premium"` // decimal, e.g. 0.04
	Benchmarks  Benchmarks `json:"benchmarks"`
}

// DefaultRiskPremium applies when the sector key is unknown.
const DefaultRiskPremium = 0.03

var sectors = map[Sector]SectorProfile{
	SectorTechnology: {
		Name:        "Technology / Software",
		EVEbitda:    Range{Min: 8, Typical: 10, Max: 12},
		EVRevenue:   Range{Min: 3, Typical: 4, Max: 5},
		PERatio:     Range{Min: 15, Typical: 20, Max: 25},
		RiskPremium: 0.04,
		Benchmarks:  Benchmarks{EBITDAMargin: 20, Growth: 15, ROIC: 18, DebtToEBITDA: 1.5},
	},
	SectorRetail: {
		Name:        "Retail / Commerce",
		EVEbitda:    Range{Min: 6, Typical: 7, Max: 8},
		EVRevenue:   Range{Min: 0.5, Typical: 0.75, Max: 1},
		PERatio:     Range{Min: 10, Typical: 14, Max: 18},
		RiskPremium: 0.03,
		Benchmarks:  Benchmarks{EBITDAMargin: 8, Growth: 5, ROIC: 12, DebtToEBITDA: 2.5},
	},
	SectorManufacturing: {
		Name:        "Manufacturing / Industrial",
		EVEbitda:    Range{Min: 5, Typical: 6, Max: 7},
		EVRevenue:   Range{Min: 0.8, Typical: 1, Max: 1.2},
		PERatio:     Range{Min: 8, Typical: 12, Max: 15},
		RiskPremium: 0.025,
		Benchmarks:  Benchmarks{EBITDAMargin: 12, Growth: 4, ROIC: 10, DebtToEBITDA: 2},
	},
	SectorServices: {
		Name:        "Professional Services",
		EVEbitda:    Range{Min: 6, Typical: 7.5, Max: 9},
		EVRevenue:   Range{Min: 1, Typical: 1.5, Max: 2},
		PERatio:     Range{Min: 12, Typical: 16, Max: 20},
		RiskPremium: 0.03,
		Benchmarks:  Benchmarks{EBITDAMargin: 15, Growth: 8, ROIC: 20, DebtToEBITDA: 1},
	},
	SectorFood: {
		Name:        "Food & Beverage",
		EVEbitda:    Range{Min: 7, Typical: 8.5, Max: 10},
		EVRevenue:   Range{Min: 1, Typical: 1.25, Max: 1.5},
		PERatio:     Range{Min: 12, Typical: 15, Max: 18},
		RiskPremium: 0.02,
		Benchmarks:  Benchmarks{EBITDAMargin: 10, Growth: 6, ROIC: 12, DebtToEBITDA: 2},
	},
	SectorConstruction: {
		Name:        "Construction",
		EVEbitda:    Range{Min: 5, Typical: 6, Max: 7},
		EVRevenue:   Range{Min: 0.4, Typical: 0.6, Max: 0.8},
		PERatio:     Range{Min: 8, Typical: 11, Max: 14},
		RiskPremium: 0.035,
		Benchmarks:  Benchmarks{EBITDAMargin: 8, Growth: 3, ROIC: 10, DebtToEBITDA: 3},
	},
	SectorHealth: {
		Name:        "Health / Healthcare",
		EVEbitda:    Range{Min: 8, Typical: 10, Max: 12},
		EVRevenue:   Range{Min: 2, Typical: 2.5, Max: 3},
		PERatio:     Range{Min: 15, Typical: 20, Max: 25},
		RiskPremium: 0.025,
		Benchmarks:  Benchmarks{EBITDAMargin: 18, Growth: 10, ROIC: 15, DebtToEBITDA: 1.5},
	},
	SectorAgro: {
		Name:        "Agro / Agriculture",
		EVEbitda:    Range{Min: 6, Typical: 7.5, Max: 9},
		EVRevenue:   Range{Min: 0.8, Typical: 1.1, Max: 1.5},
		PERatio:     Range{Min: 10, Typical: 13, Max: 16},
		RiskPremium: 0.04,
		Benchmarks:  Benchmarks{EBITDAMargin: 12, Growth: 5, ROIC: 10, DebtToEBITDA: 2.5},
	},
	SectorLogistics: {
		Name:        "Transport / Logistics",
		EVEbitda:    Range{Min: 6, Typical: 7, Max: 8},
		EVRevenue:   Range{Min: 0.5, Typical: 0.75, Max: 1},
		PERatio:     Range{Min: 10, Typical: 13, Max: 16},
		RiskPremium: 0.03,
		Benchmarks:  Benchmarks{EBITDAMargin: 10, Growth: 6, ROIC: 12, DebtToEBITDA: 2.5},
	},
}

// GetSector returns the profile for a sector key.
func GetSector(s Sector) (SectorProfile, bool) {
	p, ok := sectors[s]
	return p, ok
}

// SectorRiskPremium returns the sector risk premium, or DefaultRiskPremium
// when the key is unknown.
func SectorRiskPremium(s Sector) float64 {
	if p, ok := sectors[s]; ok {
		return p.RiskPremium
	}
	return DefaultRiskPremium
}

// Sectors returns a copy of the sector table keyed by sector id.
func Sectors() map[Sector]SectorProfile {
	out := make(map[Sector]SectorProfile, len(sectors))
	for k, v := range sectors {
		out[k] = v
	}
	return out
}
