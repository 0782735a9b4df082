package refdata

// CompanySize is an enumerated key into the size table.
type CompanySize string

const (
	SizeMicro  CompanySize = "micro"
	SizeSmall  CompanySize = "small"
	SizeMedium CompanySize = "medium"
)

// SizeProfile describes one company size category.
type SizeProfile struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeRange [2]int `json:"employee_range"`
	// SizeDiscount is applied multiplicatively to the blended enterprise
	// value (smaller companies trade at a discount for illiquidity/key-man
	// risk).
	SizeDiscount float64 `json:"size_discount"`
	// ScorePoints is the size factor award in the investment score (max 15).
	ScorePoints int `json:"score_points"`
}

// Fallbacks for unknown size keys.
const (
	DefaultSizeDiscount    = 0.0
	DefaultSizeScorePoints = 5
)

var sizes = map[CompanySize]SizeProfile{
	SizeMicro: {
		Name:          "Micro Enterprise",
		Description:   "Fewer than 10 employees",
		EmployeeRange: [2]int{1, 9},
		SizeDiscount:  0.15,
		ScorePoints:   5,
	},
	SizeSmall: {
		Name:          "Small Enterprise",
		Description:   "10 to 50 employees",
		EmployeeRange: [2]int{10, 50},
		SizeDiscount:  0.08,
		ScorePoints:   10,
	},
	SizeMedium: {
		Name:          "Medium Enterprise",
		Description:   "50 to 250 employees",
		EmployeeRange: [2]int{51, 250},
		SizeDiscount:  0.03,
		ScorePoints:   15,
	},
}

// GetSize returns the profile for a size key.
func GetSize(s CompanySize) (SizeProfile, bool) {
	p, ok := sizes[s]
	return p, ok
}

// Sizes returns a copy of the size table.
func Sizes() map[CompanySize]SizeProfile {
	out := make(map[CompanySize]SizeProfile, len(sizes))
	for k, v := range sizes {
		out[k] = v
	}
	return out
}
