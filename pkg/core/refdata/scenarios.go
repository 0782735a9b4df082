package refdata

// Scenario is an enumerated key into the scenario table.
type Scenario string

const (
	ScenarioOptimistic  Scenario = "optimistic"
	ScenarioBase        Scenario = "base"
	ScenarioPessimistic Scenario = "pessimistic"
)

// ScenarioProfile carries the display metadata and adjustment for a scenario.
// The aggregator exposes the adjustment for display but does not apply it to
// the blended value.
type ScenarioProfile struct {
	Name        string  `json:"name"`
	Adjustment  float64 `json:"adjustment"` // decimal, e.g. 0.2 = +20%
	Description string  `json:"description"`
}

var scenarios = map[Scenario]ScenarioProfile{
	ScenarioOptimistic: {
		Name:        "Optimistic",
		Adjustment:  0.2,
		Description: "Best expected case",
	},
	ScenarioBase: {
		Name:        "Base",
		Adjustment:  0,
		Description: "Most likely case",
	},
	ScenarioPessimistic: {
		Name:        "Pessimistic",
		Adjustment:  -0.2,
		Description: "Conservative case",
	},
}

// GetScenario returns the profile for a scenario key.
func GetScenario(s Scenario) (ScenarioProfile, bool) {
	p, ok := scenarios[s]
	return p, ok
}

// ScenarioAdjustment returns the adjustment for a scenario, 0 when unknown.
func ScenarioAdjustment(s Scenario) float64 {
	if p, ok := scenarios[s]; ok {
		return p.Adjustment
	}
	return 0
}

// Scenarios returns a copy of the scenario table.
func Scenarios() map[Scenario]ScenarioProfile {
	out := make(map[Scenario]ScenarioProfile, len(scenarios))
	for k, v := range scenarios {
		out[k] = v
	}
	return out
}
